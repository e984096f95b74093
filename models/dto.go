package models

import "mime/multipart"

type CreateProductInput struct {
	Name        string
	Price       string
	Description string
	Category    string
	Image       *multipart.FileHeader
}

// UpdateProductInput carries only the fields the form actually submitted.
// Nil pointers keep the stored value.
type UpdateProductInput struct {
	Name        *string
	Price       *string
	Description *string
	Category    *string
	Image       *multipart.FileHeader
}

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
