package repository

import (
	"context"
	"errors"

	"github.com/samber/lo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/lehmann314159/vokab/internal/models"
)

// wordDocument is the BSON shape of a word
type wordDocument struct {
	ID            bson.ObjectID `bson:"_id,omitempty"`
	Name          string        `bson:"name"`
	Meaning       string        `bson:"meaning"`
	Origin        *string       `bson:"origin,omitempty"`
	Pronunciation *string       `bson:"pronunciation,omitempty"`
	Synonyms      []string      `bson:"synonyms"`
	Antonyms      []string      `bson:"antonyms"`
	UsageExamples []string      `bson:"usageExamples"`
}

var byName = bson.D{{Key: "name", Value: 1}, {Key: "_id", Value: 1}}

// MongoRepository implements Store on a MongoDB collection
type MongoRepository struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// NewMongoRepository wraps an existing collection. client may be nil when
// the caller owns the connection.
func NewMongoRepository(client *mongo.Client, coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{client: client, coll: coll}
}

// Create inserts a new word and returns it with its ObjectID
func (r *MongoRepository) Create(ctx context.Context, word *models.Word) (*models.Word, error) {
	doc := toDocument(word)
	doc.ID = bson.NewObjectID()

	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return nil, &models.StoreError{Op: "insert word", Err: err}
	}
	return doc.toWord(), nil
}

// CreateMany inserts all words with one ordered InsertMany call
func (r *MongoRepository) CreateMany(ctx context.Context, words []*models.Word) ([]*models.Word, error) {
	if len(words) == 0 {
		return []*models.Word{}, nil
	}

	docs := lo.Map(words, func(w *models.Word, _ int) wordDocument {
		doc := toDocument(w)
		doc.ID = bson.NewObjectID()
		return doc
	})

	if _, err := r.coll.InsertMany(ctx, docs); err != nil {
		return nil, &models.StoreError{Op: "insert words", Err: err}
	}

	return lo.Map(docs, func(d wordDocument, _ int) *models.Word {
		return d.toWord()
	}), nil
}

// GetByID retrieves a word by its hex ObjectID
func (r *MongoRepository) GetByID(ctx context.Context, id string) (*models.Word, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	var doc wordDocument
	err = r.coll.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, &models.StoreError{Op: "find word", Err: err}
	}
	return doc.toWord(), nil
}

// FindByName retrieves every word with exactly this name
func (r *MongoRepository) FindByName(ctx context.Context, name string) ([]*models.Word, error) {
	return r.find(ctx, bson.D{{Key: "name", Value: name}}, options.Find())
}

// List retrieves the whole collection
func (r *MongoRepository) List(ctx context.Context, opts models.ListOptions) ([]*models.Word, error) {
	findOpts := options.Find()
	if opts.SortByName {
		findOpts.SetSort(byName)
	}
	return r.find(ctx, bson.D{}, findOpts)
}

// ListNames returns every name sorted ascending
func (r *MongoRepository) ListNames(ctx context.Context) ([]string, error) {
	findOpts := options.Find().
		SetSort(byName).
		SetProjection(bson.D{{Key: "name", Value: 1}})

	words, err := r.find(ctx, bson.D{}, findOpts)
	if err != nil {
		return nil, err
	}
	return lo.Map(words, func(w *models.Word, _ int) string { return w.Name }), nil
}

// Replace overwrites the document and returns the stored result
func (r *MongoRepository) Replace(ctx context.Context, id string, word *models.Word) (*models.Word, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return nil, err
	}

	replacement := toDocument(word)
	replacement.ID = oid

	var doc wordDocument
	err = r.coll.FindOneAndReplace(ctx,
		bson.D{{Key: "_id", Value: oid}},
		replacement,
		options.FindOneAndReplace().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, models.ErrNotFound
		}
		return nil, &models.StoreError{Op: "replace word", Err: err}
	}
	return doc.toWord(), nil
}

// Delete removes a word by ID
func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseObjectID(id)
	if err != nil {
		return err
	}

	err = r.coll.FindOneAndDelete(ctx, bson.D{{Key: "_id", Value: oid}}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return models.ErrNotFound
		}
		return &models.StoreError{Op: "delete word", Err: err}
	}
	return nil
}

// Count returns the total number of documents
func (r *MongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, &models.StoreError{Op: "count words", Err: err}
	}
	return count, nil
}

// Ping checks the primary is reachable
func (r *MongoRepository) Ping(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	if err := r.client.Ping(ctx, readpref.Primary()); err != nil {
		return &models.StoreError{Op: "ping mongodb", Err: err}
	}
	return nil
}

// Close disconnects the client
func (r *MongoRepository) Close(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Disconnect(ctx)
}

func (r *MongoRepository) find(ctx context.Context, filter bson.D, opts *options.FindOptionsBuilder) ([]*models.Word, error) {
	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, &models.StoreError{Op: "query words", Err: err}
	}

	var docs []wordDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, &models.StoreError{Op: "decode words", Err: err}
	}

	return lo.Map(docs, func(d wordDocument, _ int) *models.Word {
		return d.toWord()
	}), nil
}

func parseObjectID(id string) (bson.ObjectID, error) {
	oid, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return bson.NilObjectID, models.ErrInvalidID
	}
	return oid, nil
}

// toDocument leaves w untouched; only the copy is normalized
func toDocument(w *models.Word) wordDocument {
	norm := *w
	norm.Normalize()
	return wordDocument{
		Name:          norm.Name,
		Meaning:       norm.Meaning,
		Origin:        norm.Origin,
		Pronunciation: norm.Pronunciation,
		Synonyms:      norm.Synonyms,
		Antonyms:      norm.Antonyms,
		UsageExamples: norm.UsageExamples,
	}
}

func (d wordDocument) toWord() *models.Word {
	w := &models.Word{
		ID:            d.ID.Hex(),
		Name:          d.Name,
		Meaning:       d.Meaning,
		Origin:        d.Origin,
		Pronunciation: d.Pronunciation,
		Synonyms:      d.Synonyms,
		Antonyms:      d.Antonyms,
		UsageExamples: d.UsageExamples,
	}
	w.Normalize()
	return w
}
