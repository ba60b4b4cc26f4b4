package models

// TechnologyModel is a technology tag shared by works.
type TechnologyModel struct {
	Base
	Name string `json:"name" gorm:"size:100;uniqueIndex;not null"`
	Icon string `json:"icon" gorm:"size:100"`
}

func (TechnologyModel) TableName() string { return "technologies" }

// WorkModel is a portfolio project.
// Technologies is a shared many-to-many association; deleting a work never
// deletes a technology row.
type WorkModel struct {
	Base
	Title        string            `json:"title"        gorm:"size:100;not null"`
	Subtext      string            `json:"subtext"      gorm:"type:text"`
	Description  string            `json:"description"  gorm:"type:text"`
	Image        string            `json:"image"`
	Technologies []TechnologyModel `json:"technologies" gorm:"many2many:work_technologies"`
	GithubLink   string            `json:"github_link"`
	LiveLink     string            `json:"live_link"`
	Order        int               `json:"order"        gorm:"column:sort_order;default:0;index"`
}

func (WorkModel) TableName() string { return "works" }
