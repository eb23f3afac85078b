package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/surya-madhav/AWS-MLOps-Mentor/internal/domain"
)

func SeedDomain(tb testing.TB, ctx context.Context, tx *gorm.DB, name string, order int) *types.Domain {
	tb.Helper()
	d := &types.Domain{
		ID:            uuid.New(),
		Name:          name,
		Weight:        10,
		OrderPosition: order,
	}
	if err := tx.WithContext(ctx).Create(d).Error; err != nil {
		tb.Fatalf("seed domain: %v", err)
	}
	return d
}

func SeedTopic(tb testing.TB, ctx context.Context, tx *gorm.DB, domainID uuid.UUID, name string, order int) *types.Topic {
	tb.Helper()
	t := &types.Topic{
		ID:            uuid.New(),
		DomainID:      domainID,
		Name:          name,
		OrderPosition: order,
	}
	if err := tx.WithContext(ctx).Create(t).Error; err != nil {
		tb.Fatalf("seed topic: %v", err)
	}
	return t
}

func SeedContentItem(tb testing.TB, ctx context.Context, tx *gorm.DB, topicID uuid.UUID, typ types.ContentType, name string, order int) *types.ContentItem {
	tb.Helper()
	c := &types.ContentItem{
		ID:            uuid.New(),
		TopicID:       topicID,
		Type:          typ,
		Name:          name,
		Content:       "content for " + name,
		OrderPosition: order,
	}
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed content item: %v", err)
	}
	return c
}

func SeedProgress(tb testing.TB, ctx context.Context, tx *gorm.DB, userID, itemID uuid.UUID, completed bool) *types.UserContentProgress {
	tb.Helper()
	p := &types.UserContentProgress{
		ID:            uuid.New(),
		UserID:        userID,
		ContentItemID: itemID,
		IsCompleted:   completed,
		LastUpdated:   time.Now().UTC().Truncate(time.Microsecond),
	}
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed progress: %v", err)
	}
	return p
}

func PtrString(v string) *string { return &v }

func PtrBool(v bool) *bool { return &v }
