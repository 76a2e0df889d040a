package entities

import (
	"time"

	"github.com/google/uuid"
)

// Like, Favorite and Follow are set-valued relations: the composite unique index
// holds at most one row per pair, and inserts go through ON CONFLICT DO NOTHING.

type Like struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_likes_recipe_user" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_likes_recipe_user" json:"user_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

type Favorite struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_favorites_recipe_user" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_favorites_recipe_user" json:"user_id"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

type Follow struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	FollowerID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_follows_pair" json:"follower_id"`
	FolloweeID uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_follows_pair" json:"followee_id"`
	CreatedAt  time.Time `gorm:"type:timestamp" json:"created_at"`

	Follower *User `gorm:"foreignKey:FollowerID"`
	Followee *User `gorm:"foreignKey:FolloweeID"`
}

// Comment is an append-only log; several comments per (recipe, user) are fine.
type Comment struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID  uuid.UUID `gorm:"type:uuid;index" json:"recipe_id"`
	UserID    uuid.UUID `gorm:"type:uuid" json:"user_id"`
	Content   string    `gorm:"type:text" json:"content"`
	CreatedAt time.Time `gorm:"type:timestamp" json:"created_at"`

	User   *User   `gorm:"foreignKey:UserID"`
	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}

// RecipeView is the raw view log, one row per recorded view. ViewerID is nil for
// anonymous views.
type RecipeView struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	RecipeID      uuid.UUID  `gorm:"type:uuid;index" json:"recipe_id"`
	ViewerID      *uuid.UUID `gorm:"type:uuid" json:"viewer_id,omitempty"`
	SourceAddress string     `json:"source_address"`
	CreatedAt     time.Time  `gorm:"type:timestamp" json:"created_at"`

	Recipe *Recipe `gorm:"foreignKey:RecipeID"`
}
