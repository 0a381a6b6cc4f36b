package storage

import (
	"time"

	"github.com/akarasev/harvester/internal/types"
)

// Record is the flat persisted form of an article, shared by every
// sink so rows look the same across backends.
type Record struct {
	Link      string    `json:"link"      bson:"link"`
	Title     string    `json:"title"     bson:"title"`
	Published time.Time `json:"published" bson:"published"`
	Source    string    `json:"source"    bson:"source"`
	Country   string    `json:"country"   bson:"country"`
	Text      string    `json:"text"      bson:"text"`
	StoredAt  time.Time `json:"stored_at" bson:"stored_at"`
}

// NewRecord flattens an article for persistence.
func NewRecord(art *types.Article) Record {
	r := Record{
		Link:      art.Link,
		Title:     art.Title,
		Published: art.Published,
		Country:   art.Country,
		Text:      art.Text,
		StoredAt:  time.Now().UTC(),
	}
	if art.Source != nil {
		r.Source = art.Source.Name
	}
	return r
}
