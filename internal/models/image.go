package models

import "time"

type Image struct {
	ID              int        `json:"id"`
	AdvertisementID int        `json:"advertisement_id"`
	FileName        string     `json:"file_name"`
	ContentType     string     `json:"content_type"`
	Content         []byte     `json:"-"`
	URL             string     `json:"url,omitempty"`
	IsDeleted       bool       `json:"-"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`
}
