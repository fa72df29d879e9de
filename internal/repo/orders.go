package repo

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"kisansetu-backend/pkg/models"
)

const ordersCollection = "orders"

// CreateOrder persists the order and returns it with its assigned id and
// schema defaults filled in.
func (s *Store) CreateOrder(ctx context.Context, o models.Order) (models.Order, error) {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.OrderDate.IsZero() {
		o.OrderDate = time.Now()
	}
	if o.Status == "" {
		o.Status = models.StatusConfirmed
	}
	if _, err := s.collection(ordersCollection).InsertOne(ctx, o); err != nil {
		return models.Order{}, fmt.Errorf("insert order: %w", err)
	}
	return o, nil
}

// FindOrders returns at most limit orders, newest first. A non-empty query is
// matched as a case-insensitive substring against userEmail, userId and status.
func (s *Store) FindOrders(ctx context.Context, query string, limit int64) ([]models.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "orderDate", Value: -1}}).
		SetLimit(limit)
	cur, err := s.collection(ordersCollection).Find(ctx, orderFilter(query), opts)
	if err != nil {
		return nil, fmt.Errorf("find orders: %w", err)
	}
	orders := []models.Order{}
	if err := cur.All(ctx, &orders); err != nil {
		return nil, fmt.Errorf("decode orders: %w", err)
	}
	return orders, nil
}

func (s *Store) FindOrderByID(ctx context.Context, id string) (models.Order, error) {
	var o models.Order
	err := s.collection(ordersCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&o)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Order{}, ErrNotFound
	}
	if err != nil {
		return models.Order{}, fmt.Errorf("find order %s: %w", id, err)
	}
	return o, nil
}

func orderFilter(query string) bson.M {
	if query == "" {
		return bson.M{}
	}
	re := primitive.Regex{Pattern: regexp.QuoteMeta(query), Options: "i"}
	return bson.M{"$or": bson.A{
		bson.M{"userEmail": re},
		bson.M{"userId": re},
		bson.M{"status": re},
	}}
}
