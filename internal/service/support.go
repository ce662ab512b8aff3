package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/proactivefit/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrTopicNotFound = errors.New("topic not found")
	ErrPostNotFound  = errors.New("post not found")
)

// SupportService owns the support groups forum: topics and their posts.
type SupportService struct {
	db *gorm.DB
}

func NewSupportService(db *gorm.DB) *SupportService {
	return &SupportService{db: db}
}

// ListTopics returns all topics, newest first.
func (s *SupportService) ListTopics(ctx context.Context) ([]models.SupportTopic, error) {
	var topics []models.SupportTopic
	if err := s.db.WithContext(ctx).Order("created_at DESC").Find(&topics).Error; err != nil {
		return nil, fmt.Errorf("failed to list topics: %w", err)
	}
	return topics, nil
}

func (s *SupportService) CreateTopic(ctx context.Context, title, description, category string) (*models.SupportTopic, error) {
	topic := &models.SupportTopic{
		Title:       title,
		Description: description,
		Category:    category,
		IsAnonymous: true,
	}
	if err := s.db.WithContext(ctx).Create(topic).Error; err != nil {
		return nil, fmt.Errorf("failed to create topic: %w", err)
	}
	return topic, nil
}

func (s *SupportService) UpdateTopic(ctx context.Context, id uuid.UUID, title, description string) (*models.SupportTopic, error) {
	result := s.db.WithContext(ctx).Model(&models.SupportTopic{}).Where("id = ?", id).
		Updates(map[string]interface{}{"title": title, "description": description})
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update topic: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrTopicNotFound
	}

	var topic models.SupportTopic
	if err := s.db.WithContext(ctx).First(&topic, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to load updated topic: %w", err)
	}
	return &topic, nil
}

// DeleteTopic removes a topic and all of its posts. Both deletes run in one
// transaction so a crash cannot leave dangling posts.
func (s *SupportService) DeleteTopic(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("topic_id = ?", id).Delete(&models.SupportPost{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.SupportTopic{}).Error
	})
	if err != nil {
		return fmt.Errorf("failed to delete topic: %w", err)
	}
	return nil
}

// IncrementViews bumps the view counter with a single arithmetic update at
// the database layer, so concurrent increments are never lost.
func (s *SupportService) IncrementViews(ctx context.Context, id uuid.UUID) error {
	err := s.db.WithContext(ctx).Model(&models.SupportTopic{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", 1)).Error
	if err != nil {
		return fmt.Errorf("failed to increment views: %w", err)
	}
	return nil
}

// ListPosts returns a topic's posts, oldest first.
func (s *SupportService) ListPosts(ctx context.Context, topicID uuid.UUID) ([]models.SupportPost, error) {
	var posts []models.SupportPost
	err := s.db.WithContext(ctx).Where("topic_id = ?", topicID).
		Order("created_at ASC").Find(&posts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (s *SupportService) CreatePost(ctx context.Context, topicID uuid.UUID, content, username string) (*models.SupportPost, error) {
	var topic models.SupportTopic
	if err := s.db.WithContext(ctx).First(&topic, "id = ?", topicID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTopicNotFound
		}
		return nil, fmt.Errorf("failed to load topic: %w", err)
	}

	post := &models.SupportPost{
		TopicID:     topicID,
		Content:     content,
		Username:    username,
		IsAnonymous: true,
	}
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	return post, nil
}

func (s *SupportService) UpdatePost(ctx context.Context, id uuid.UUID, content string) (*models.SupportPost, error) {
	result := s.db.WithContext(ctx).Model(&models.SupportPost{}).Where("id = ?", id).
		Update("content", content)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to update post: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, ErrPostNotFound
	}

	var post models.SupportPost
	if err := s.db.WithContext(ctx).First(&post, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("failed to load updated post: %w", err)
	}
	return &post, nil
}

func (s *SupportService) DeletePost(ctx context.Context, id uuid.UUID) error {
	if err := s.db.WithContext(ctx).Where("id = ?", id).Delete(&models.SupportPost{}).Error; err != nil {
		return fmt.Errorf("failed to delete post: %w", err)
	}
	return nil
}
