package model

import "time"

type GenerationStatus string

const (
	GenerationStatusSucceed GenerationStatus = "succeed"
	GenerationStatusFailed  GenerationStatus = "failed"
)

func (s GenerationStatus) String() string {
	return string(s)
}

// Generation is one attempt against the image model, success or not.
type Generation struct {
	Id          int       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Prompt      string    `gorm:"column:prompt;type:text" json:"prompt"`
	Model       string    `gorm:"column:model;type:varchar(64)" json:"model"`
	Status      string    `gorm:"column:status;type:varchar(16)" json:"status"`
	StatusCode  int       `gorm:"column:status_code" json:"status_code"`
	DurationMs  int64     `gorm:"column:duration_ms" json:"duration_ms"`
	ErrorDetail string    `gorm:"column:error_detail;type:text" json:"error_detail,omitempty"`
	ImageHandle string    `gorm:"column:image_handle;type:varchar(64)" json:"image_handle,omitempty"`
	CreatedAt   time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Generation) TableName() string {
	return "generation"
}
