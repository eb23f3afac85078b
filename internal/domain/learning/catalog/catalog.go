package catalog

import (
	"time"

	"github.com/google/uuid"
)

// Domain is a top-level knowledge area.
type Domain struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name          string    `gorm:"column:name;not null" json:"name"`
	Description   *string   `gorm:"column:description;type:text" json:"description"`
	Weight        int       `gorm:"column:weight;not null" json:"weight"`
	OrderPosition int       `gorm:"column:order_position;not null;index:idx_learning_domain_order,priority:1" json:"order_position"`
	InsertSeq     int64     `gorm:"column:insert_seq;not null;index:idx_learning_domain_order,priority:2" json:"-"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

func (Domain) TableName() string { return "learning_domain" }

type Topic struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	DomainID      uuid.UUID `gorm:"type:uuid;not null;index" json:"domain_id"`
	Domain        *Domain   `gorm:"constraint:OnDelete:CASCADE;foreignKey:DomainID;references:ID" json:"-"`
	Name          string    `gorm:"column:name;not null" json:"name"`
	Description   *string   `gorm:"column:description;type:text" json:"description"`
	OrderPosition int       `gorm:"column:order_position;not null" json:"order_position"`
	InsertSeq     int64     `gorm:"column:insert_seq;not null" json:"-"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time `gorm:"not null" json:"updated_at"`
}

func (Topic) TableName() string { return "learning_topic" }

// ContentItem is a single learnable unit. Items sort within a topic by
// (type, order_position).
type ContentItem struct {
	ID            uuid.UUID   `gorm:"type:uuid;primaryKey" json:"id"`
	TopicID       uuid.UUID   `gorm:"type:uuid;not null;index;index:idx_learning_content_item_topic_type,priority:1" json:"topic_id"`
	Topic         *Topic      `gorm:"constraint:OnDelete:CASCADE;foreignKey:TopicID;references:ID" json:"-"`
	Type          ContentType `gorm:"column:type;type:varchar(32);not null;index;index:idx_learning_content_item_topic_type,priority:2" json:"type"`
	Name          string      `gorm:"column:name;not null" json:"name"`
	Content       string      `gorm:"column:content;type:text;not null" json:"content"`
	OrderPosition int         `gorm:"column:order_position;not null" json:"order_position"`
	InsertSeq     int64       `gorm:"column:insert_seq;not null" json:"-"`
	CreatedAt     time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time   `gorm:"not null" json:"updated_at"`
}

func (ContentItem) TableName() string { return "learning_content_item" }
