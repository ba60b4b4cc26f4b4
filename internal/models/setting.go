package models

// SettingModel is a site-wide key-value setting. Value is free text; some
// keys hold stringified structured data that consumers parse themselves.
type SettingModel struct {
	Base
	Key   string `json:"key"   gorm:"size:100;uniqueIndex;not null"`
	Value string `json:"value" gorm:"type:longtext"`
}

func (SettingModel) TableName() string { return "settings" }

// SettingFileModel is a named file reference exposed to the front end.
type SettingFileModel struct {
	Base
	Name string `json:"name" gorm:"size:100;uniqueIndex;not null"`
	File string `json:"file"`
}

func (SettingFileModel) TableName() string { return "setting_files" }
