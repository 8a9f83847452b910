package cloud

import (
	"cloud.google.com/go/firestore"
	"context"
	"time"
)

// DB interface
// This interface is a common interface for the DB operations
type DB interface {
	GetAll(ctx context.Context, collectionPath string, whereClauses []Where) ([]map[string]interface{}, error)
	GetByID(ctx context.Context, collectionPath string, documentID string) (map[string]interface{}, error)
	Add(ctx context.Context, collectionPath string, document interface{}) (string, time.Time, error)
	Save(ctx context.Context,
		collectionPath string, documentID string, document interface{}) (time.Time, error)
	Update(ctx context.Context,
		collectionPath string, documentID string, document []firestore.Update) (time.Time, error)
	Delete(ctx context.Context, collectionPath string, documentID string) (bool, error)
}

// Queue interface
// This interface is a common interface for the Queue/PubSub operations
type Queue interface {
	Publish(ctx context.Context, topicName string, response any)
}

type Where struct {
	Field    string
	Operator string
	Value    interface{}
}
