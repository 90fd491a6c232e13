// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package mongostore keeps completed responses in a MongoDB collection.
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/shanakasp/backendNextSupabase/store"
	"github.com/shanakasp/backendNextSupabase/survey"
)

// Collection holds one document per respondent, keyed by email in _id.
const Collection = "user_responses"

type responseDoc struct {
	ID             string    `bson:"_id"`
	FirstQuestion  string    `bson:"first_question"`
	SecondQuestion string    `bson:"second_question"`
	ThirdQuestion  string    `bson:"third_question,omitempty"`
	FourthQuestion string    `bson:"fourth_question,omitempty"`
	CreatedAt      time.Time `bson:"created_at"`
	UpdatedAt      time.Time `bson:"updated_at"`
}

// Archive implements store.Archive on MongoDB.
type Archive struct {
	client *mongo.Client
	coll   *mongo.Collection
	now    store.Clock
}

// Connect dials uri and pings the primary before returning.
func Connect(ctx context.Context, uri, database string) (*Archive, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	return &Archive{
		client: client,
		coll:   client.Database(database).Collection(Collection),
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}

// Close disconnects the client.
func (a *Archive) Close(ctx context.Context) error {
	return a.client.Disconnect(ctx)
}

func (a *Archive) Exists(ctx context.Context, id string) (bool, error) {
	n, err := a.coll.CountDocuments(ctx, idFilter(id), options.Count().SetLimit(1))
	if err != nil {
		return false, fmt.Errorf("check archive %s: %w: %w", id, store.ErrUnavailable, err)
	}
	return n > 0, nil
}

// Upsert refreshes the document, setting created_at only when inserting.
func (a *Archive) Upsert(ctx context.Context, resp survey.CompletedResponse) error {
	_, err := a.coll.UpdateOne(ctx, idFilter(resp.ID), upsertUpdate(resp, a.now()), options.Update().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("archive response %s: %w: %w", resp.ID, store.ErrUnavailable, err)
	}
	return nil
}

func (a *Archive) Get(ctx context.Context, id string) (*survey.CompletedResponse, error) {
	var doc responseDoc
	err := a.coll.FindOne(ctx, idFilter(id)).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("get archive %s: %w", id, store.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("get archive %s: %w: %w", id, store.ErrUnavailable, err)
	}
	resp := fromDoc(doc)
	return &resp, nil
}

func idFilter(id string) bson.D {
	return bson.D{{Key: "_id", Value: id}}
}

func upsertUpdate(resp survey.CompletedResponse, now time.Time) bson.D {
	return bson.D{
		{Key: "$set", Value: bson.D{
			{Key: "first_question", Value: resp.FirstQuestion},
			{Key: "second_question", Value: resp.SecondQuestion},
			{Key: "third_question", Value: resp.ThirdQuestion},
			{Key: "fourth_question", Value: resp.FourthQuestion},
			{Key: "updated_at", Value: now},
		}},
		{Key: "$setOnInsert", Value: bson.D{
			{Key: "created_at", Value: now},
		}},
	}
}

func fromDoc(doc responseDoc) survey.CompletedResponse {
	return survey.CompletedResponse{
		ID:             doc.ID,
		FirstQuestion:  doc.FirstQuestion,
		SecondQuestion: doc.SecondQuestion,
		ThirdQuestion:  doc.ThirdQuestion,
		FourthQuestion: doc.FourthQuestion,
		CreatedAt:      doc.CreatedAt.UTC(),
		UpdatedAt:      doc.UpdatedAt.UTC(),
	}
}
