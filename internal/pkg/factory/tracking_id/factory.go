package tracking_id

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

const prefix = "ZAP"

// TrackingIDFactory выдает идентификаторы вида ZAP-YYYYMMDD-XXXXXX,
// где суффикс - 3 случайных байта в hex верхним регистром.
type TrackingIDFactory struct{}

func New() *TrackingIDFactory {
	return &TrackingIDFactory{}
}

func (f *TrackingIDFactory) NewTrackingID() string {
	buf := make([]byte, 3)
	// rand.Read из crypto/rand не возвращает ошибку с Go 1.24
	_, _ = rand.Read(buf)

	return fmt.Sprintf("%s-%s-%s",
		prefix,
		time.Now().UTC().Format("20060102"),
		strings.ToUpper(hex.EncodeToString(buf)),
	)
}
