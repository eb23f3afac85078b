package progress

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func (p *UserContentProgress) BeforeCreate(_ *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
