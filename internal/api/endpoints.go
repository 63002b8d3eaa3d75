package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/zhiqi-health/wellness-client/internal/models"
)

// AuthService covers registration, login and the profile endpoints.
type AuthService struct{ c *Client }

func (s AuthService) Register(ctx context.Context, payload any) (*Response, error) {
	return s.c.do(ctx, http.MethodPost, "/api/auth/register", nil, payload)
}

func (s AuthService) Login(ctx context.Context, creds models.Credentials) (*Response, error) {
	return s.c.do(ctx, http.MethodPost, "/api/auth/login", nil, creds)
}

func (s AuthService) Profile(ctx context.Context) (*Response, error) {
	return s.c.do(ctx, http.MethodGet, "/api/auth/profile", nil, nil)
}

func (s AuthService) UpdateProfile(ctx context.Context, payload any) (*Response, error) {
	return s.c.do(ctx, http.MethodPut, "/api/auth/profile", nil, payload)
}

// ContentService covers the content center (articles) CRUD and likes.
type ContentService struct{ c *Client }

func (s ContentService) List(ctx context.Context, params url.Values) (*Response, error) {
	return s.c.do(ctx, http.MethodGet, "/api/content/", params, nil)
}

func (s ContentService) Get(ctx context.Context, id int64) (*Response, error) {
	return s.c.do(ctx, http.MethodGet, fmt.Sprintf("/api/content/%d", id), nil, nil)
}

func (s ContentService) Create(ctx context.Context, payload any) (*Response, error) {
	return s.c.do(ctx, http.MethodPost, "/api/content/", nil, payload)
}

func (s ContentService) Update(ctx context.Context, id int64, payload any) (*Response, error) {
	return s.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/content/%d", id), nil, payload)
}

func (s ContentService) Delete(ctx context.Context, id int64) (*Response, error) {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/content/%d", id), nil, nil)
}

func (s ContentService) Like(ctx context.Context, id int64) (*Response, error) {
	return s.c.do(ctx, http.MethodPost, fmt.Sprintf("/api/content/%d/like", id), nil, nil)
}

// ProductService covers the product catalog.
type ProductService struct{ c *Client }

func (s ProductService) List(ctx context.Context, params url.Values) (*Response, error) {
	return s.c.do(ctx, http.MethodGet, "/api/products/", params, nil)
}

func (s ProductService) Get(ctx context.Context, id int64) (*Response, error) {
	return s.c.do(ctx, http.MethodGet, fmt.Sprintf("/api/products/%d", id), nil, nil)
}

// ActivityService covers bookable activities.
type ActivityService struct{ c *Client }

func (s ActivityService) List(ctx context.Context, params url.Values) (*Response, error) {
	return s.c.do(ctx, http.MethodGet, "/api/activities/", params, nil)
}

func (s ActivityService) Get(ctx context.Context, id int64) (*Response, error) {
	return s.c.do(ctx, http.MethodGet, fmt.Sprintf("/api/activities/%d", id), nil, nil)
}

func (s ActivityService) Create(ctx context.Context, payload any) (*Response, error) {
	return s.c.do(ctx, http.MethodPost, "/api/activities/", nil, payload)
}

// Register signs the current user up for an activity.
func (s ActivityService) Register(ctx context.Context, id int64) (*Response, error) {
	return s.c.do(ctx, http.MethodPost, fmt.Sprintf("/api/activities/%d/register", id), nil, nil)
}

// BaseService covers the experience bases.
type BaseService struct{ c *Client }

func (s BaseService) List(ctx context.Context) (*Response, error) {
	return s.c.do(ctx, http.MethodGet, "/api/bases/", nil, nil)
}

func (s BaseService) Get(ctx context.Context, id int64) (*Response, error) {
	return s.c.do(ctx, http.MethodGet, fmt.Sprintf("/api/bases/%d", id), nil, nil)
}

// OrderService covers order listing and creation.
type OrderService struct{ c *Client }

func (s OrderService) List(ctx context.Context, params url.Values) (*Response, error) {
	return s.c.do(ctx, http.MethodGet, "/api/orders/", params, nil)
}

func (s OrderService) Get(ctx context.Context, id int64) (*Response, error) {
	return s.c.do(ctx, http.MethodGet, fmt.Sprintf("/api/orders/%d", id), nil, nil)
}

func (s OrderService) Create(ctx context.Context, payload any) (*Response, error) {
	return s.c.do(ctx, http.MethodPost, "/api/orders/", nil, payload)
}

// PaymentService covers payment creation.
type PaymentService struct{ c *Client }

func (s PaymentService) Create(ctx context.Context, payload any) (*Response, error) {
	return s.c.do(ctx, http.MethodPost, "/api/payments/create-payment", nil, payload)
}

// ReviewService covers product and activity reviews.
type ReviewService struct{ c *Client }

func (s ReviewService) List(ctx context.Context, params url.Values) (*Response, error) {
	return s.c.do(ctx, http.MethodGet, "/api/reviews/", params, nil)
}

func (s ReviewService) Create(ctx context.Context, payload any) (*Response, error) {
	return s.c.do(ctx, http.MethodPost, "/api/reviews/", nil, payload)
}

// UserService covers the user dashboard and server-side favorites.
type UserService struct{ c *Client }

func (s UserService) Dashboard(ctx context.Context) (*Response, error) {
	return s.c.do(ctx, http.MethodGet, "/api/user/dashboard", nil, nil)
}

func (s UserService) Favorites(ctx context.Context, params url.Values) (*Response, error) {
	return s.c.do(ctx, http.MethodGet, "/api/user/favorites", params, nil)
}

func (s UserService) AddFavorite(ctx context.Context, payload any) (*Response, error) {
	return s.c.do(ctx, http.MethodPost, "/api/user/favorites", nil, payload)
}

func (s UserService) RemoveFavorite(ctx context.Context, id int64) (*Response, error) {
	return s.c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/user/favorites/%d", id), nil, nil)
}

// AdminService covers the moderation and statistics endpoints.
type AdminService struct{ c *Client }

func (s AdminService) Stats(ctx context.Context) (*Response, error) {
	return s.c.do(ctx, http.MethodGet, "/api/admin/stats", nil, nil)
}

func (s AdminService) ActivitiesForReview(ctx context.Context) (*Response, error) {
	return s.c.do(ctx, http.MethodGet, "/api/admin/activities/review", nil, nil)
}

func (s AdminService) ReviewActivity(ctx context.Context, id int64, payload any) (*Response, error) {
	return s.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/activities/%d/review", id), nil, payload)
}

func (s AdminService) ContentForReview(ctx context.Context) (*Response, error) {
	return s.c.do(ctx, http.MethodGet, "/api/admin/content/review", nil, nil)
}

func (s AdminService) PublishContent(ctx context.Context, id int64) (*Response, error) {
	return s.c.do(ctx, http.MethodPut, fmt.Sprintf("/api/admin/content/%d/publish", id), nil, nil)
}
