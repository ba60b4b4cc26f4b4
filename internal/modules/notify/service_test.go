package notify_test

import (
	"context"
	"encoding/json"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/wahidu1/portfolio-core/internal/models"
	"github.com/wahidu1/portfolio-core/internal/modules/notify"
	"github.com/wahidu1/portfolio-core/internal/modules/settings"
	"github.com/wahidu1/portfolio-core/internal/pkg/mail"
)

func newService(t *testing.T) *notify.Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SettingModel{}))

	// mail disabled: sending is a no-op, so the handler exercises payload
	// decoding and settings resolution only
	mailer := mail.New(mail.Config{Enable: false})
	return notify.NewService(settings.NewService(db), mailer, "noreply@example.com", zap.NewNop())
}

func TestHandleContactAck(t *testing.T) {
	svc := newService(t)

	payload, err := json.Marshal(notify.ContactAckPayload{
		Name:    "Wahid",
		Email:   "wahid@example.com",
		Message: "Hello!",
	})
	require.NoError(t, err)
	require.NoError(t, svc.HandleContactAck(context.Background(), payload))
}

func TestHandleContactAckBadPayload(t *testing.T) {
	svc := newService(t)

	err := svc.HandleContactAck(context.Background(), []byte("{not json"))
	require.Error(t, err)
}
