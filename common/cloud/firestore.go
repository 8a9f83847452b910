package cloud

import (
	"cloud.google.com/go/firestore"
	"context"
	"errors"
	"github.com/TakeoffTech/pin-drop-svc/common"
	"github.com/TakeoffTech/pin-drop-svc/common/logging"
	"github.com/TakeoffTech/pin-drop-svc/common/utils"
	"go.opencensus.io/trace"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"log"
	"os"
	"time"
)

type FirestoreRepository struct {
	client *firestore.Client
	logger *zap.SugaredLogger
}

var FirestoreRepositoryObj FirestoreRepository

// NewFirestoreRepository creates a FirestoreRepositoryObj
func NewFirestoreRepository(ctx context.Context) *FirestoreRepository {
	ctx, span := trace.StartSpan(ctx, utils.GetSpanName("firestore.NewFirestoreRepository"))
	defer span.End()
	if FirestoreRepositoryObj.client != nil {
		FirestoreRepositoryObj.logger = logging.GetLoggerFromContext(ctx)

		return &FirestoreRepositoryObj
	}
	firestoreClient, err := firestore.NewClient(ctx, os.Getenv(common.EnvProjectID))
	if err != nil {
		log.Fatalf("Failed to create firestore client: %v", err)
	}
	FirestoreRepositoryObj.client = firestoreClient
	FirestoreRepositoryObj.logger = logging.GetLoggerFromContext(ctx)

	return &FirestoreRepositoryObj
}

// GetAll will return every document under the collectionPath matching all the whereClauses.
// The store assigned document ID is returned under the "id" key of each document.
func (f *FirestoreRepository) GetAll(ctx context.Context,
	collectionPath string, whereClauses []Where) ([]map[string]interface{}, error) {
	ctx, span := trace.StartSpan(ctx, utils.GetSpanName("firestore.GetAll"))
	defer span.End()
	query := f.client.Collection(collectionPath).Query
	for _, where := range whereClauses {
		query = query.Where(where.Field, where.Operator, where.Value)
	}

	result := make([]map[string]interface{}, 0)
	docItr := query.Documents(ctx)
	defer docItr.Stop()
	for {
		doc, err := docItr.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			f.logger.Errorf("Error occurred while fetching the documents from DB : %v", err)

			return nil, err
		}
		result = append(result, withDocumentID(doc))
	}

	return result, nil
}

// GetByID returns a single document for the passed collectionPath and documentID
// A codes.NotFound status error is returned if the document does not exist
func (f *FirestoreRepository) GetByID(ctx context.Context,
	collectionPath string, documentID string) (map[string]interface{}, error) {
	ctx, span := trace.StartSpan(ctx, utils.GetSpanName("firestore.GetByID"))
	defer span.End()
	doc, err := f.client.Collection(collectionPath).Doc(documentID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			f.logger.Debugf("Document ID %s not found", documentID)

			return nil, status.Error(codes.NotFound, "document not found")
		}

		return nil, err
	}

	return withDocumentID(doc), nil
}

// Add function will save the document in the DB under a new ID generated by the store
// and return that ID
func (f *FirestoreRepository) Add(ctx context.Context,
	collectionPath string, document interface{}) (string, time.Time, error) {
	ctx, span := trace.StartSpan(ctx, utils.GetSpanName("firestore.Add"))
	defer span.End()
	ref, result, err := f.client.Collection(collectionPath).Add(ctx, document)
	if err != nil {
		f.logger.Errorf("Error occurred while adding the document to DB : %v", err)

		return "", time.Time{}, err
	}

	return ref.ID, result.UpdateTime, nil
}

// Save function will save the document in the DB with the given collectionID and documentID
func (f *FirestoreRepository) Save(ctx context.Context,
	collectionPath string, documentID string, document interface{}) (time.Time, error) {
	ctx, span := trace.StartSpan(ctx, utils.GetSpanName("firestore.Save"))
	defer span.End()
	result, err := f.client.Collection(collectionPath).Doc(documentID).Create(ctx, document)
	if err != nil {
		f.logger.Errorf("Error occurred while saving the document to DB : %v", err)

		return time.Time{}, err
	}

	return result.UpdateTime, nil
}

// Update will perform all the updates passed in updates []firestore.Update for the collectionID and documentID
func (f *FirestoreRepository) Update(ctx context.Context,
	collectionPath string, documentID string, updates []firestore.Update) (time.Time, error) {
	ctx, span := trace.StartSpan(ctx, utils.GetSpanName("firestore.Update"))
	defer span.End()
	result, err := f.client.Collection(collectionPath).Doc(documentID).Update(ctx, updates)
	if err != nil {
		f.logger.Errorf("Error occurred while updating the document to DB : %v", err)

		return time.Time{}, err
	}

	return result.UpdateTime, nil
}

// Delete function will delete the document id provided under the collection path
func (f *FirestoreRepository) Delete(ctx context.Context, collectionPath string,
	documentID string) (bool, error) {
	ctx, span := trace.StartSpan(ctx, utils.GetSpanName("firestore.Delete"))
	defer span.End()
	_, err := f.client.Collection(collectionPath).Doc(documentID).Delete(ctx)
	if err != nil {
		f.logger.Errorf("Error occurred while deleting the document from DB : %v", err)

		return false, err
	}

	return true, nil
}

func withDocumentID(doc *firestore.DocumentSnapshot) map[string]interface{} {
	data := doc.Data()
	if data == nil {
		data = make(map[string]interface{})
	}
	data[common.ID] = doc.Ref.ID

	return data
}
