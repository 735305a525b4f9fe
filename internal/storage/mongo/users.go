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
)

// userDoc — документ коллекции users.
type userDoc struct {
	ID           string          `bson:"_id"`
	Login        string          `bson:"login"`
	Email        string          `bson:"email"`
	PasswordHash string          `bson:"password_hash"`
	CreatedAt    time.Time       `bson:"created_at"`
	Confirmation confirmationDoc `bson:"confirmation"`
	Recovery     recoveryDoc     `bson:"recovery"`
}

type confirmationDoc struct {
	Code      string    `bson:"code,omitempty"`
	ExpiresAt time.Time `bson:"expires_at,omitempty"`
	Confirmed bool      `bson:"confirmed"`
}

type recoveryDoc struct {
	Code      string    `bson:"code,omitempty"`
	ExpiresAt time.Time `bson:"expires_at,omitempty"`
}

func userToDoc(u *models.User) userDoc {
	return userDoc{
		ID:           u.ID.String(),
		Login:        u.Login,
		Email:        u.Email,
		PasswordHash: u.PasswordHash,
		CreatedAt:    toMS(u.CreatedAt),
		Confirmation: confirmationDoc{
			Code:      u.Confirmation.Code,
			ExpiresAt: toMS(u.Confirmation.ExpiresAt),
			Confirmed: u.Confirmation.Confirmed,
		},
		Recovery: recoveryDoc{
			Code:      u.Recovery.Code,
			ExpiresAt: toMS(u.Recovery.ExpiresAt),
		},
	}
}

func userFromDoc(d userDoc) (*models.User, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, fmt.Errorf("parse _id: %w", err)
	}

	return &models.User{
		ID:           id,
		Login:        d.Login,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		CreatedAt:    d.CreatedAt.UTC(),
		Confirmation: models.EmailConfirmation{
			Code:      d.Confirmation.Code,
			ExpiresAt: d.Confirmation.ExpiresAt.UTC(),
			Confirmed: d.Confirmation.Confirmed,
		},
		Recovery: models.PasswordRecovery{
			Code:      d.Recovery.Code,
			ExpiresAt: d.Recovery.ExpiresAt.UTC(),
		},
	}, nil
}

// SaveUser создает нового пользователя; дубликат login/email — ErrAlreadyExists.
func (m *Mongo) SaveUser(ctx context.Context, user *models.User) error {
	const op = "storage/mongo/SaveUser"

	if _, err := m.users.InsertOne(ctx, userToDoc(user)); err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return fmt.Errorf("%s: %w", op, storage.ErrAlreadyExists)
		}

		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

func (m *Mongo) findUser(ctx context.Context, op string, filter bson.D) (*models.User, error) {
	var doc userDoc
	if err := m.users.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	u, err := userFromDoc(doc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return u, nil
}

// UserByLoginOrEmail находит пользователя по login ИЛИ email (точное совпадение,
// с учётом регистра — как сохранено).
func (m *Mongo) UserByLoginOrEmail(ctx context.Context, loginOrEmail string) (*models.User, error) {
	const op = "storage/mongo/UserByLoginOrEmail"

	filter := bson.D{{Key: "$or", Value: bson.A{
		bson.D{{Key: "login", Value: loginOrEmail}},
		bson.D{{Key: "email", Value: loginOrEmail}},
	}}}

	return m.findUser(ctx, op, filter)
}

// UserByID находит пользователя по ID.
func (m *Mongo) UserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const op = "storage/mongo/UserByID"

	return m.findUser(ctx, op, bson.D{{Key: "_id", Value: id.String()}})
}

// UserByConfirmationCode находит пользователя по коду подтверждения e-mail.
func (m *Mongo) UserByConfirmationCode(ctx context.Context, code string) (*models.User, error) {
	const op = "storage/mongo/UserByConfirmationCode"

	return m.findUser(ctx, op, bson.D{{Key: "confirmation.code", Value: code}})
}

// UserByRecoveryCode находит пользователя по коду восстановления пароля.
func (m *Mongo) UserByRecoveryCode(ctx context.Context, code string) (*models.User, error) {
	const op = "storage/mongo/UserByRecoveryCode"

	return m.findUser(ctx, op, bson.D{{Key: "recovery.code", Value: code}})
}

func (m *Mongo) updateUser(ctx context.Context, op string, userID uuid.UUID, set bson.D) error {
	res, err := m.users.UpdateOne(ctx,
		bson.D{{Key: "_id", Value: userID.String()}},
		bson.D{{Key: "$set", Value: set}},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if res.MatchedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// UpdateConfirmation заменяет состояние подтверждения e-mail пользователя.
func (m *Mongo) UpdateConfirmation(ctx context.Context, userID uuid.UUID, c models.EmailConfirmation) error {
	const op = "storage/mongo/UpdateConfirmation"

	return m.updateUser(ctx, op, userID, bson.D{
		{Key: "confirmation", Value: confirmationDoc{
			Code:      c.Code,
			ExpiresAt: toMS(c.ExpiresAt),
			Confirmed: c.Confirmed,
		}},
	})
}

// UpdateRecovery заменяет код восстановления пароля пользователя.
func (m *Mongo) UpdateRecovery(ctx context.Context, userID uuid.UUID, r models.PasswordRecovery) error {
	const op = "storage/mongo/UpdateRecovery"

	return m.updateUser(ctx, op, userID, bson.D{
		{Key: "recovery", Value: recoveryDoc{
			Code:      r.Code,
			ExpiresAt: toMS(r.ExpiresAt),
		}},
	})
}

// UpdatePasswordHash заменяет хэш пароля и сбрасывает код восстановления.
func (m *Mongo) UpdatePasswordHash(ctx context.Context, userID uuid.UUID, hash string) error {
	const op = "storage/mongo/UpdatePasswordHash"

	return m.updateUser(ctx, op, userID, bson.D{
		{Key: "password_hash", Value: hash},
		{Key: "recovery", Value: recoveryDoc{}},
	})
}
