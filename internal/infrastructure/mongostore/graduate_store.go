package mongostore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	domain "github.com/nucareers/career-portal/internal/domain/graduate"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	collectionName   = "graduates"
	nuIDIndexName    = "nuId_1"
	nuEmailIndexName = "nuEmail_1"
)

type graduateDocument struct {
	ID                 primitive.ObjectID `bson:"_id,omitempty"`
	NuID               string             `bson:"nuId"`
	FullName           string             `bson:"fullName"`
	NuEmail            string             `bson:"nuEmail"`
	Discipline         string             `bson:"discipline"`
	YearOfGraduation   int                `bson:"yearOfGraduation"`
	CGPA               float64            `bson:"cgpa"`
	PersonalEmail      string             `bson:"personalEmail,omitempty"`
	ProfilePic         string             `bson:"profilePic,omitempty"`
	Contact            string             `bson:"contact,omitempty"`
	Tagline            string             `bson:"tagline,omitempty"`
	PersonalExperience string             `bson:"personalExperience,omitempty"`
	Certificate        string             `bson:"certificate,omitempty"`
	FYP                string             `bson:"fyp,omitempty"`
	CreatedAt          time.Time          `bson:"createdAt"`
	UpdatedAt          time.Time          `bson:"updatedAt"`
}

// GraduateStore keeps graduates in a MongoDB collection with unique nuId and nuEmail indexes.
type GraduateStore struct {
	coll *mongo.Collection
	log  logrus.FieldLogger
}

func Connect(ctx context.Context, uri string) (*mongo.Client, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("connect mongo: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("ping mongo: %w", err)
	}
	return client, nil
}

func NewGraduateStore(db *mongo.Database, log logrus.FieldLogger) *GraduateStore {
	return &GraduateStore{coll: db.Collection(collectionName), log: log}
}

func (s *GraduateStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "nuId", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(nuIDIndexName),
		},
		{
			Keys:    bson.D{{Key: "nuEmail", Value: 1}},
			Options: options.Index().SetUnique(true).SetName(nuEmailIndexName),
		},
		{
			Keys: bson.D{{Key: "fullName", Value: 1}},
		},
	})
	if err != nil {
		return fmt.Errorf("create graduate indexes: %w", err)
	}
	return nil
}

// InsertChunk performs an unordered InsertMany; per-document write errors come
// back as failures rather than as an error.
func (s *GraduateStore) InsertChunk(ctx context.Context, graduates []domain.Graduate) (domain.ChunkResult, error) {
	result := domain.ChunkResult{Attempted: len(graduates)}
	if len(graduates) == 0 {
		return result, nil
	}

	now := time.Now().UTC()
	docs := make([]interface{}, 0, len(graduates))
	for _, g := range graduates {
		doc := toDocument(g)
		doc.CreatedAt, doc.UpdatedAt = now, now
		docs = append(docs, doc)
	}

	_, err := s.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	if err == nil {
		result.Inserted = len(graduates)
		return result, nil
	}

	result, wce, err := insertManyResult(err, graduates)
	if wce != nil {
		s.log.WithFields(logrus.Fields{
			"code":      wce.Code,
			"attempted": len(graduates),
		}).Warnf("graduate insert write concern error: %s", wce.Message)
	}
	return result, err
}

// insertManyResult maps a failed unordered insert onto the chunk. Documents without
// a write error were written even when the write concern was not met, so the
// write concern error is returned separately.
func insertManyResult(err error, graduates []domain.Graduate) (domain.ChunkResult, *mongo.WriteConcernError, error) {
	var bulkErr mongo.BulkWriteException
	if !errors.As(err, &bulkErr) || len(bulkErr.WriteErrors) == 0 {
		if mongo.IsNetworkError(err) || mongo.IsTimeout(err) {
			return domain.ChunkResult{}, nil, fmt.Errorf("%w: insert graduates: %v", domain.ErrStoreUnavailable, err)
		}
		return domain.ChunkResult{}, nil, fmt.Errorf("insert graduates: %w", err)
	}

	result := domain.ChunkResult{Attempted: len(graduates)}
	for _, writeErr := range bulkErr.WriteErrors {
		result.Failures = append(result.Failures, classifyWriteError(writeErr.WriteError, graduates))
	}
	result.Inserted = len(graduates) - len(bulkErr.WriteErrors)
	return result, bulkErr.WriteConcernError, nil
}

func (s *GraduateStore) GetByID(ctx context.Context, id string) (*domain.Graduate, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidGraduateID
	}

	var doc graduateDocument
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGraduateNotFound
		}
		return nil, fmt.Errorf("find graduate: %w", err)
	}

	g := doc.toDomain()
	return &g, nil
}

func (s *GraduateStore) List(ctx context.Context, filter domain.ListFilter) (domain.Page, error) {
	query := bson.M{}
	if filter.Search != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Search), Options: "i"}
		query = bson.M{"$or": bson.A{
			bson.M{"fullName": pattern},
			bson.M{"nuId": pattern},
			bson.M{"discipline": pattern},
		}}
	}

	total, err := s.coll.CountDocuments(ctx, query)
	if err != nil {
		return domain.Page{}, fmt.Errorf("count graduates: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "fullName", Value: 1}, {Key: "_id", Value: 1}}).
		SetSkip(int64(filter.Offset())).
		SetLimit(int64(filter.Limit))

	cursor, err := s.coll.Find(ctx, query, opts)
	if err != nil {
		return domain.Page{}, fmt.Errorf("find graduates: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []graduateDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return domain.Page{}, fmt.Errorf("decode graduates: %w", err)
	}

	items := make([]domain.Graduate, 0, len(docs))
	for _, doc := range docs {
		items = append(items, doc.toDomain())
	}
	return domain.Page{Items: items, Total: total}, nil
}

func (s *GraduateStore) UpdateProfile(ctx context.Context, id string, patch domain.ProfilePatch) (*domain.Graduate, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrInvalidGraduateID
	}

	set := profileSet(patch)
	set["updatedAt"] = time.Now().UTC()

	var doc graduateDocument
	err = s.coll.FindOneAndUpdate(
		ctx,
		bson.M{"_id": oid},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGraduateNotFound
		}
		return nil, fmt.Errorf("update graduate: %w", err)
	}

	g := doc.toDomain()
	return &g, nil
}

func (s *GraduateStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrInvalidGraduateID
	}

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete graduate: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrGraduateNotFound
	}
	return nil
}

func classifyWriteError(writeErr mongo.WriteError, graduates []domain.Graduate) domain.WriteFailure {
	failure := domain.WriteFailure{Index: writeErr.Index, Reason: writeErr.Message}
	if !isDuplicateKeyCode(writeErr.Code) {
		return failure
	}

	if key, value, ok := keyValueOf(writeErr.Raw); ok && (key == domain.KeyNuID || key == domain.KeyNuEmail) {
		failure.Key, failure.Value = key, value
		return failure
	}

	// Servers that omit keyValue still name the violated index in the message.
	if writeErr.Index < 0 || writeErr.Index >= len(graduates) {
		return failure
	}
	g := graduates[writeErr.Index]
	switch {
	case strings.Contains(writeErr.Message, nuIDIndexName):
		failure.Key, failure.Value = domain.KeyNuID, g.NuID
	case strings.Contains(writeErr.Message, nuEmailIndexName):
		failure.Key, failure.Value = domain.KeyNuEmail, g.NuEmail
	}
	return failure
}

func isDuplicateKeyCode(code int) bool {
	return code == 11000 || code == 11001 || code == 12582
}

func keyValueOf(raw bson.Raw) (string, string, bool) {
	if len(raw) == 0 {
		return "", "", false
	}
	doc, ok := raw.Lookup("keyValue").DocumentOK()
	if !ok {
		return "", "", false
	}
	elems, err := doc.Elements()
	if err != nil || len(elems) == 0 {
		return "", "", false
	}
	value, ok := elems[0].Value().StringValueOK()
	if !ok {
		return "", "", false
	}
	return elems[0].Key(), value, true
}

func profileSet(patch domain.ProfilePatch) bson.M {
	set := bson.M{}
	put := func(field string, value *string) {
		if value != nil {
			set[field] = *value
		}
	}
	put("fullName", patch.FullName)
	put("discipline", patch.Discipline)
	put("personalEmail", patch.PersonalEmail)
	put("profilePic", patch.ProfilePic)
	put("contact", patch.Contact)
	put("tagline", patch.Tagline)
	put("personalExperience", patch.PersonalExperience)
	put("certificate", patch.Certificate)
	put("fyp", patch.FYP)
	if patch.YearOfGraduation != nil {
		set["yearOfGraduation"] = *patch.YearOfGraduation
	}
	if patch.CGPA != nil {
		set["cgpa"] = *patch.CGPA
	}
	return set
}

func toDocument(g domain.Graduate) graduateDocument {
	return graduateDocument{
		NuID:               g.NuID,
		FullName:           g.FullName,
		NuEmail:            g.NuEmail,
		Discipline:         g.Discipline,
		YearOfGraduation:   g.YearOfGraduation,
		CGPA:               g.CGPA,
		PersonalEmail:      g.PersonalEmail,
		ProfilePic:         g.ProfilePic,
		Contact:            g.Contact,
		Tagline:            g.Tagline,
		PersonalExperience: g.PersonalExperience,
		Certificate:        g.Certificate,
		FYP:                g.FYP,
	}
}

func (d graduateDocument) toDomain() domain.Graduate {
	return domain.Graduate{
		ID:                 d.ID.Hex(),
		NuID:               d.NuID,
		FullName:           d.FullName,
		NuEmail:            d.NuEmail,
		Discipline:         d.Discipline,
		YearOfGraduation:   d.YearOfGraduation,
		CGPA:               d.CGPA,
		PersonalEmail:      d.PersonalEmail,
		ProfilePic:         d.ProfilePic,
		Contact:            d.Contact,
		Tagline:            d.Tagline,
		PersonalExperience: d.PersonalExperience,
		Certificate:        d.Certificate,
		FYP:                d.FYP,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}
