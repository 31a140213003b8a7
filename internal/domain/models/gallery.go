package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Gallery представляет собой модель галереи
type Gallery struct {
	ID          uuid.UUID `json:"id"`          // Уникальный идентификатор галереи
	Title       string    `json:"title"`       // Заголовок галереи (обязательное поле)
	Description string    `json:"description"` // Описание галереи (по умолчанию пустое)
	OwnerID     uuid.UUID `json:"owner_id"`    // ID владельца, задаётся один раз при создании
	Media       MediaList `json:"media"`       // Упорядоченный список медиа (порядок = порядок загрузки)
	CreatedAt   time.Time `json:"created_at"`  // Дата создания
}

// MediaList хранится в записи галереи единым jsonb-массивом.
// Пополняется только атомарным append на уровне БД.
type MediaList []Media

// Value реализует интерфейс driver.Valuer для сериализации MediaList в JSONB
func (l MediaList) Value() (driver.Value, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l)
}

// Scan реализует интерфейс sql.Scanner для десериализации JSONB в MediaList
func (l *MediaList) Scan(value interface{}) error {
	if value == nil {
		*l = MediaList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return fmt.Errorf("unsupported type %T for MediaList", value)
	}
}
