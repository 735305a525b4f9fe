package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"blogger-platform/internal/models"
	"blogger-platform/internal/storage"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// sessionDoc — документ коллекции sessions.
type sessionDoc struct {
	UserID   string    `bson:"user_id"`
	DeviceID string    `bson:"device_id"`
	IP       string    `bson:"ip"`
	Title    string    `bson:"title"`
	IatDate  time.Time `bson:"iat_date"`
	ExpDate  time.Time `bson:"exp_date"`
}

// MongoDB DateTime хранит миллисекунды; iat токена имеет секундную точность,
// поэтому усечение не ломает проверку равенства.
func toMS(t time.Time) time.Time { return t.UTC().Truncate(time.Millisecond) }

func sessionToDoc(s *models.Session) sessionDoc {
	return sessionDoc{
		UserID:   s.UserID.String(),
		DeviceID: s.DeviceID,
		IP:       s.IP,
		Title:    s.Title,
		IatDate:  toMS(s.IssuedAt),
		ExpDate:  toMS(s.ExpiresAt),
	}
}

func sessionFromDoc(d sessionDoc) (*models.Session, error) {
	uid, err := uuid.Parse(d.UserID)
	if err != nil {
		return nil, fmt.Errorf("parse user_id: %w", err)
	}

	return &models.Session{
		UserID:    uid,
		DeviceID:  d.DeviceID,
		IP:        d.IP,
		Title:     d.Title,
		IssuedAt:  d.IatDate.UTC(),
		ExpiresAt: d.ExpDate.UTC(),
	}, nil
}

// SaveSession создает или замещает сессию пары (user_id, device_id).
// Upsert сохраняет инвариант «одна сессия на устройство» даже при повторном
// входе с уже известным deviceId.
func (m *Mongo) SaveSession(ctx context.Context, session *models.Session) error {
	const op = "storage/mongo/SaveSession"

	doc := sessionToDoc(session)
	filter := bson.D{
		{Key: "user_id", Value: doc.UserID},
		{Key: "device_id", Value: doc.DeviceID},
	}

	_, err := m.sessions.ReplaceOne(ctx, filter, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RotateSession — compare-and-swap: заменяет iat/exp только если текущий
// iat_date равен oldIssuedAt. Ноль совпавших документов означает, что сессию
// успела ротировать (или удалить) конкурирующая операция — ErrConflict.
func (m *Mongo) RotateSession(ctx context.Context, userID uuid.UUID, deviceID string, oldIssuedAt, newIssuedAt, newExpiresAt time.Time, ip, title string) error {
	const op = "storage/mongo/RotateSession"

	filter := bson.D{
		{Key: "user_id", Value: userID.String()},
		{Key: "device_id", Value: deviceID},
		{Key: "iat_date", Value: toMS(oldIssuedAt)},
	}

	update := bson.D{{Key: "$set", Value: bson.D{
		{Key: "iat_date", Value: toMS(newIssuedAt)},
		{Key: "exp_date", Value: toMS(newExpiresAt)},
		{Key: "ip", Value: ip},
		{Key: "title", Value: title},
	}}}

	res, err := m.sessions.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrConflict)
	}

	return nil
}

// SessionByUserAndDevice возвращает сессию пары (userID, deviceID).
func (m *Mongo) SessionByUserAndDevice(ctx context.Context, userID uuid.UUID, deviceID string) (*models.Session, error) {
	const op = "storage/mongo/SessionByUserAndDevice"

	filter := bson.D{
		{Key: "user_id", Value: userID.String()},
		{Key: "device_id", Value: deviceID},
	}

	var doc sessionDoc
	if err := m.sessions.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s, err := sessionFromDoc(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

// SessionByDeviceID возвращает сессию по deviceID независимо от владельца.
// Нужна для различения 404 (нет сессии) и 403 (чужая сессия) при удалении.
func (m *Mongo) SessionByDeviceID(ctx context.Context, deviceID string) (*models.Session, error) {
	const op = "storage/mongo/SessionByDeviceID"

	var doc sessionDoc
	if err := m.sessions.FindOne(ctx, bson.D{{Key: "device_id", Value: deviceID}}).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s, err := sessionFromDoc(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s, nil
}

// SessionsByUser возвращает все сессии пользователя (свежие сверху).
func (m *Mongo) SessionsByUser(ctx context.Context, userID uuid.UUID) ([]models.Session, error) {
	const op = "storage/mongo/SessionsByUser"

	filter := bson.D{{Key: "user_id", Value: userID.String()}}
	opts := options.Find().SetSort(bson.D{{Key: "iat_date", Value: -1}})

	cur, err := m.sessions.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cur.Close(ctx)

	var out []models.Session
	for cur.Next(ctx) {
		var doc sessionDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		s, err := sessionFromDoc(doc)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, *s)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return out, nil
}

// DeleteSession удаляет сессию; true — если запись была удалена.
func (m *Mongo) DeleteSession(ctx context.Context, userID uuid.UUID, deviceID string) (bool, error) {
	const op = "storage/mongo/DeleteSession"

	filter := bson.D{
		{Key: "user_id", Value: userID.String()},
		{Key: "device_id", Value: deviceID},
	}

	res, err := m.sessions.DeleteOne(ctx, filter)
	if err != nil {
		return false, fmt.Errorf("%s: %w", op, err)
	}

	return res.DeletedCount > 0, nil
}

// DeleteOtherSessions удаляет все сессии пользователя, кроме keepDeviceID.
func (m *Mongo) DeleteOtherSessions(ctx context.Context, userID uuid.UUID, keepDeviceID string) (int64, error) {
	const op = "storage/mongo/DeleteOtherSessions"

	filter := bson.D{
		{Key: "user_id", Value: userID.String()},
		{Key: "device_id", Value: bson.D{{Key: "$ne", Value: keepDeviceID}}},
	}

	res, err := m.sessions.DeleteMany(ctx, filter)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return res.DeletedCount, nil
}

// DeleteExpiredSessions удаляет просроченные сессии (подстраховка TTL-индекса,
// который Mongo обслуживает с задержкой до минуты).
func (m *Mongo) DeleteExpiredSessions(ctx context.Context, now time.Time) error {
	const op = "storage/mongo/DeleteExpiredSessions"

	filter := bson.D{{Key: "exp_date", Value: bson.D{{Key: "$lt", Value: toMS(now)}}}}

	if _, err := m.sessions.DeleteMany(ctx, filter); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
