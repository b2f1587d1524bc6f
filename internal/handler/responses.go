package handlers

import (
	"time"

	"goblog/internal/models"
)

type UserResponse struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email,omitempty"`
	IsAdmin  bool   `json:"isAdmin"`
}

type PostResponse struct {
	ID        int64      `json:"id"`
	Title     string     `json:"title"`
	Summary   string     `json:"summary"`
	Body      string     `json:"body"`
	Slug      string     `json:"slug"`
	Author    *int64     `json:"author,omitempty"`
	Created   time.Time  `json:"created"`
	Modified  *time.Time `json:"modified,omitempty"`
	PubDate   *time.Time `json:"pubDate,omitempty"`
	IsVisible bool       `json:"isVisible"`
}

type PageResponse struct {
	ID       int64      `json:"id"`
	Title    string     `json:"title"`
	Text     string     `json:"text"`
	Created  time.Time  `json:"created"`
	Modified *time.Time `json:"modified,omitempty"`
}

func toUserResponse(user *models.User) UserResponse {
	resp := UserResponse{
		ID:       user.ID,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}
	if user.Email.Valid {
		resp.Email = user.Email.String
	}
	return resp
}

func toPostResponse(post *models.Post) PostResponse {
	resp := PostResponse{
		ID:        post.ID,
		Title:     post.Title,
		Summary:   post.Summary,
		Body:      post.Body,
		Slug:      post.Slug,
		Created:   post.Created,
		IsVisible: post.IsVisible(),
	}
	if post.Author.Valid {
		resp.Author = &post.Author.Int64
	}
	if post.Modified.Valid {
		resp.Modified = &post.Modified.Time
	}
	if post.PubDate.Valid {
		resp.PubDate = &post.PubDate.Time
	}
	return resp
}

func toPostResponses(posts []models.Post) []PostResponse {
	resp := make([]PostResponse, 0, len(posts))
	for i := range posts {
		resp = append(resp, toPostResponse(&posts[i]))
	}
	return resp
}

func toPageResponse(page *models.Page) PageResponse {
	resp := PageResponse{
		ID:      page.ID,
		Title:   page.Title,
		Text:    page.Text,
		Created: page.Created,
	}
	if page.Modified.Valid {
		resp.Modified = &page.Modified.Time
	}
	return resp
}
