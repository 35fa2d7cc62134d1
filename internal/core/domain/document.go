package domain

import (
	"errors"
	"time"
)

var ErrTemplateNotFound = errors.New("template not found")

// Document is a generated or uploaded paper attached to a case.
type Document struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	CaseID      string    `json:"case_id" bson:"case_id"`
	Name        string    `json:"name" bson:"name"`
	TemplateKey string    `json:"template_key,omitempty" bson:"template_key,omitempty"`
	Content     string    `json:"content,omitempty" bson:"content,omitempty"`
	FileURL     string    `json:"file_url,omitempty" bson:"file_url,omitempty"`
	Tags        []string  `json:"tags,omitempty" bson:"tags,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
}

// Template is a document blueprint with literal {{placeholder}} markers.
type Template struct {
	Key     string `json:"key"`
	Name    string `json:"name"`
	Content string `json:"content"`
}
