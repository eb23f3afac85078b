package catalog

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var lastInsertSeq atomic.Int64

// NextInsertSeq returns a strictly increasing value seeded from the wall
// clock, so rows created by separate processes still interleave sensibly.
func NextInsertSeq() int64 {
	for {
		prev := lastInsertSeq.Load()
		next := time.Now().UnixNano()
		if next <= prev {
			next = prev + 1
		}
		if lastInsertSeq.CompareAndSwap(prev, next) {
			return next
		}
	}
}

func (d *Domain) BeforeCreate(_ *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.InsertSeq == 0 {
		d.InsertSeq = NextInsertSeq()
	}
	return nil
}

func (t *Topic) BeforeCreate(_ *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	if t.InsertSeq == 0 {
		t.InsertSeq = NextInsertSeq()
	}
	return nil
}

func (c *ContentItem) BeforeCreate(_ *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.InsertSeq == 0 {
		c.InsertSeq = NextInsertSeq()
	}
	return nil
}
