package storage

import (
	"time"

	"github.com/sandeepkv93/listd/internal/model"
)

// Persisted schema, version 1. Timestamps are RFC 3339 strings, ids are
// opaque. completed_at is optional so files written before it existed still
// load. active_list_id is omitted when no list is selected.

const schemaVersion = 1

type documentRecord struct {
	SchemaVersion int          `json:"schema_version"`
	ActiveListID  string       `json:"active_list_id,omitempty"`
	Lists         []listRecord `json:"lists"`
}

type listRecord struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	CreatedAt time.Time    `json:"created_at"`
	Items     []itemRecord `json:"items"`
}

type itemRecord struct {
	ID          string     `json:"id"`
	Text        string     `json:"text"`
	Completed   bool       `json:"completed"`
	CreatedAt   time.Time  `json:"created_at"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func toRecord(doc *model.Document) documentRecord {
	rec := documentRecord{
		SchemaVersion: schemaVersion,
		ActiveListID:  doc.ActiveListID,
		Lists:         make([]listRecord, 0, len(doc.Lists)),
	}
	for _, list := range doc.Lists {
		lr := listRecord{
			ID:        list.ID,
			Name:      list.Name,
			CreatedAt: list.CreatedAt,
			Items:     make([]itemRecord, 0, len(list.Items)),
		}
		for _, item := range list.Items {
			lr.Items = append(lr.Items, itemRecord{
				ID:          item.ID,
				Text:        item.Text,
				Completed:   item.Completed,
				CreatedAt:   item.CreatedAt,
				CompletedAt: item.CompletedAt,
			})
		}
		rec.Lists = append(rec.Lists, lr)
	}
	return rec
}

func toDocument(rec documentRecord) *model.Document {
	doc := model.NewDocument()
	doc.ActiveListID = rec.ActiveListID
	doc.Lists = make([]model.TaskList, 0, len(rec.Lists))
	for _, lr := range rec.Lists {
		list := model.TaskList{
			ID:        lr.ID,
			Name:      lr.Name,
			CreatedAt: lr.CreatedAt,
			Items:     make([]model.Item, 0, len(lr.Items)),
		}
		for _, ir := range lr.Items {
			list.Items = append(list.Items, model.Item{
				ID:          ir.ID,
				Text:        ir.Text,
				Completed:   ir.Completed,
				CreatedAt:   ir.CreatedAt,
				CompletedAt: ir.CompletedAt,
			})
		}
		doc.Lists = append(doc.Lists, list)
	}
	return doc
}
