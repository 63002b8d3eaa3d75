// Package models defines the core data structures shared by the store,
// the API client and the router.
package models

// UserProfile holds the backend-provided profile of the signed-in user.
type UserProfile struct {
	// ID is the unique identifier for the user.
	ID int64 `json:"id"`
	// Username is the login name chosen by the user.
	Username string `json:"username"`
	// Email is the registered e-mail address.
	Email string `json:"email,omitempty"`
	// Phone is the registered mobile number.
	Phone string `json:"phone,omitempty"`
	// RealName is the user's real name, used for activity sign-ups.
	RealName string `json:"real_name,omitempty"`
	// Role is "user" or "admin". Empty means "user".
	Role string `json:"role,omitempty"`
	// Avatar
	Avatar string `json:"avatar,omitempty"`
}

// ItemType identifies what kind of catalog entry a cart or favorite
// entry points at.
type ItemType string

const (
	// ProductItem is a product from the product center.
	ProductItem ItemType = "product"
	// ActivityItem is a bookable activity.
	ActivityItem ItemType = "activity"
	// ContentItem is an article from the content center.
	ContentItem ItemType = "content"
	// BaseItem is an experience base.
	BaseItem ItemType = "base"
)

// CartItem is one line of the shopping cart. Items are unique per
// (Type, ID) pair; adding the same pair again bumps Quantity.
type CartItem struct {
	Type     ItemType `json:"type"`
	ID       int64    `json:"id"`
	Name     string   `json:"name,omitempty"`
	Image    string   `json:"image,omitempty"`
	Price    float64  `json:"price"`
	Quantity int      `json:"quantity"`
}

// Cart is the full cart state as persisted under the "cart" key.
// Total is recomputed on every mutation and always equals the sum of
// Price*Quantity over Items.
type Cart struct {
	Items []CartItem `json:"items"`
	Total float64    `json:"total"`
}

// FavoriteItem is one favorited catalog entry, unique per (Type, ID).
type FavoriteItem struct {
	Type  ItemType `json:"type"`
	ID    int64    `json:"id"`
	Name  string   `json:"name,omitempty"`
	Image string   `json:"image,omitempty"`
	Price float64  `json:"price,omitempty"`
}

// NotificationKind distinguishes how a notification is rendered.
type NotificationKind string

const (
	NoticeInfo    NotificationKind = "info"
	NoticeSuccess NotificationKind = "success"
	NoticeWarning NotificationKind = "warning"
	NoticeError   NotificationKind = "error"
)

// Notification is a transient in-app message. Notifications are kept
// newest-first and expire automatically; they are never persisted.
type Notification struct {
	// ID is derived from the creation timestamp when not supplied.
	ID      int64            `json:"id"`
	Kind    NotificationKind `json:"kind"`
	Title   string           `json:"title,omitempty"`
	Message string           `json:"message"`
	Read    bool             `json:"read"`
}

// Credentials is the login request payload.
type Credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
