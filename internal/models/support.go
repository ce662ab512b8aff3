package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SupportTopic is a forum thread in the support groups section.
type SupportTopic struct {
	ID          uuid.UUID `gorm:"type:uuid;primarykey;default:gen_random_uuid()" json:"id"`
	Title       string    `gorm:"not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Category    string    `gorm:"not null" json:"category"`
	CreatedAt   time.Time `json:"created_at"`
	IsAnonymous bool      `gorm:"default:true" json:"is_anonymous"`
	ViewCount   int       `gorm:"default:0" json:"view_count"`

	Posts []SupportPost `gorm:"foreignKey:TopicID;constraint:OnDelete:CASCADE" json:"-"`
}

func (SupportTopic) TableName() string {
	return "support_topics"
}

// BeforeCreate assigns an ID when the database does not (sqlite has no gen_random_uuid)
func (t *SupportTopic) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// SupportPost is a reply inside a topic. Posts cannot outlive their topic.
type SupportPost struct {
	ID          uuid.UUID `gorm:"type:uuid;primarykey;default:gen_random_uuid()" json:"id"`
	TopicID     uuid.UUID `gorm:"type:uuid;not null;index" json:"topic_id"`
	Content     string    `gorm:"type:text;not null" json:"content"`
	CreatedAt   time.Time `json:"created_at"`
	IsAnonymous bool      `gorm:"default:true" json:"is_anonymous"`
	Username    string    `json:"username"` // blank means the client renders "Anonymous"
}

func (SupportPost) TableName() string {
	return "support_posts"
}

func (p *SupportPost) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
