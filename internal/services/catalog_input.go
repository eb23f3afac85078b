package services

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	types "github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain"
)

var catalogValidate *validator.Validate

func init() {
	catalogValidate = validator.New()
	if err := catalogValidate.RegisterValidation("contenttype", validateContentType); err != nil {
		panic(err)
	}
}

func validateContentType(fl validator.FieldLevel) bool {
	return types.ContentType(fl.Field().String()).Valid()
}

type CreateDomainInput struct {
	Name          string  `json:"name" yaml:"name" validate:"required,max=200"`
	Description   *string `json:"description" yaml:"description"`
	Weight        int     `json:"weight" yaml:"weight" validate:"gte=0,lte=100"`
	OrderPosition int     `json:"order_position" yaml:"order_position" validate:"gte=0"`
}

// UpdateDomainInput is a partial update; nil fields are left alone. An
// explicit null description clears it.
type UpdateDomainInput struct {
	Name          *string              `json:"name" validate:"omitempty,min=1,max=200"`
	Description   types.OptionalString `json:"description"`
	Weight        *int                 `json:"weight" validate:"omitempty,gte=0,lte=100"`
	OrderPosition *int                 `json:"order_position" validate:"omitempty,gte=0"`
}

func (in UpdateDomainInput) fields() map[string]interface{} {
	out := map[string]interface{}{}
	if in.Name != nil {
		out["name"] = *in.Name
	}
	if in.Description.Set {
		out["description"] = in.Description.Value
	}
	if in.Weight != nil {
		out["weight"] = *in.Weight
	}
	if in.OrderPosition != nil {
		out["order_position"] = *in.OrderPosition
	}
	return out
}

type CreateTopicInput struct {
	DomainID      uuid.UUID `json:"domain_id" validate:"required"`
	Name          string    `json:"name" validate:"required,max=200"`
	Description   *string   `json:"description"`
	OrderPosition int       `json:"order_position" validate:"gte=0"`
}

type UpdateTopicInput struct {
	DomainID      *uuid.UUID           `json:"domain_id"`
	Name          *string              `json:"name" validate:"omitempty,min=1,max=200"`
	Description   types.OptionalString `json:"description"`
	OrderPosition *int                 `json:"order_position" validate:"omitempty,gte=0"`
}

func (in UpdateTopicInput) fields() map[string]interface{} {
	out := map[string]interface{}{}
	if in.DomainID != nil {
		out["domain_id"] = *in.DomainID
	}
	if in.Name != nil {
		out["name"] = *in.Name
	}
	if in.Description.Set {
		out["description"] = in.Description.Value
	}
	if in.OrderPosition != nil {
		out["order_position"] = *in.OrderPosition
	}
	return out
}

type CreateContentItemInput struct {
	TopicID       uuid.UUID `json:"topic_id" validate:"required"`
	Type          string    `json:"type" validate:"required,contenttype"`
	Name          string    `json:"name" validate:"required,max=200"`
	Content       string    `json:"content"`
	OrderPosition int       `json:"order_position" validate:"gte=0"`
}

type UpdateContentItemInput struct {
	TopicID       *uuid.UUID `json:"topic_id"`
	Type          *string    `json:"type" validate:"omitempty,contenttype"`
	Name          *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Content       *string    `json:"content"`
	OrderPosition *int       `json:"order_position" validate:"omitempty,gte=0"`
}

func (in UpdateContentItemInput) fields() map[string]interface{} {
	out := map[string]interface{}{}
	if in.TopicID != nil {
		out["topic_id"] = *in.TopicID
	}
	if in.Type != nil {
		out["type"] = types.ContentType(*in.Type)
	}
	if in.Name != nil {
		out["name"] = *in.Name
	}
	if in.Content != nil {
		out["content"] = *in.Content
	}
	if in.OrderPosition != nil {
		out["order_position"] = *in.OrderPosition
	}
	return out
}

// CatalogDocument is the bulk import shape: domains holding topics holding
// items. Used by the seed command.
type CatalogDocument struct {
	Domains []CatalogDomainDoc `json:"domains" yaml:"domains" validate:"dive"`
}

type CatalogDomainDoc struct {
	CreateDomainInput `yaml:",inline"`
	Topics            []CatalogTopicDoc `json:"topics" yaml:"topics" validate:"dive"`
}

type CatalogTopicDoc struct {
	Name          string           `json:"name" yaml:"name" validate:"required,max=200"`
	Description   *string          `json:"description" yaml:"description"`
	OrderPosition int              `json:"order_position" yaml:"order_position" validate:"gte=0"`
	Items         []CatalogItemDoc `json:"items" yaml:"items" validate:"dive"`
}

type CatalogItemDoc struct {
	Type          string `json:"type" yaml:"type" validate:"required,contenttype"`
	Name          string `json:"name" yaml:"name" validate:"required,max=200"`
	Content       string `json:"content" yaml:"content"`
	OrderPosition int    `json:"order_position" yaml:"order_position" validate:"gte=0"`
}

// ImportSummary counts rows created by an import.
type ImportSummary struct {
	Domains int `json:"domains"`
	Topics  int `json:"topics"`
	Items   int `json:"items"`
}
