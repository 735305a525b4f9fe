// mongo — адаптер хранилища на MongoDB: подключение, коллекции, индексы.
//
// Коллекция sessions — единственный источник истины о девайс-сессиях
// (никакого промежуточного кэша), поэтому согласованность ротации
// обеспечивается условными обновлениями на уровне БД.
package mongo

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection    = "users"
	sessionsCollection = "sessions"
	defaultDBName      = "blogger"
)

// Mongo - тонкий адаптер для подключения и коллекций MongoDB.
type Mongo struct {
	client   *mongodriver.Client
	db       *mongodriver.Database
	users    *mongodriver.Collection
	sessions *mongodriver.Collection
}

// New подключается к MongoDB, проверяет соединение и обеспечивает индексацию.
func New(ctx context.Context, uri string) (*Mongo, error) {
	if uri == "" {
		return nil, fmt.Errorf("mongo: empty uri")
	}

	cli, err := mongodriver.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	if err := cli.Ping(ctx, readpref.Primary()); err != nil {
		_ = cli.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}

	db := cli.Database(databaseFromURI(uri))

	m := &Mongo{
		client:   cli,
		db:       db,
		users:    db.Collection(usersCollection),
		sessions: db.Collection(sessionsCollection),
	}

	if err := m.ensureIndexes(ctx); err != nil {
		_ = m.Close(ctx)
		return nil, err
	}

	return m, nil
}

func (m *Mongo) Close(ctx context.Context) error {
	return m.client.Disconnect(ctx)
}

// ensureIndexes создает индексы:
//   - users: уникальные login и email; разреженные индексы по кодам
//     подтверждения/восстановления;
//   - sessions: уникальная пара (user_id, device_id) — не более одной сессии
//     на устройство; device_id для поиска чужих сессий; TTL по exp_date.
func (m *Mongo) ensureIndexes(ctx context.Context) error {
	userModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "login", Value: 1}},
			Options: options.Index().SetName("uniq_login").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetName("uniq_email").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "confirmation.code", Value: 1}},
			Options: options.Index().SetName("confirmation_code").SetSparse(true),
		},
		{
			Keys:    bson.D{{Key: "recovery.code", Value: 1}},
			Options: options.Index().SetName("recovery_code").SetSparse(true),
		},
	}

	if _, err := m.users.Indexes().CreateMany(ctx, userModels); err != nil {
		return fmt.Errorf("mongo ensure users indexes: %w", err)
	}

	sessionModels := []mongodriver.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "device_id", Value: 1}},
			Options: options.Index().SetName("uniq_user_device").SetUnique(true),
		},
		{
			Keys:    bson.D{{Key: "device_id", Value: 1}},
			Options: options.Index().SetName("device_id"),
		},
		{
			Keys:    bson.D{{Key: "exp_date", Value: 1}},
			Options: options.Index().SetName("ttl_exp_date").SetExpireAfterSeconds(0),
		},
	}

	if _, err := m.sessions.Indexes().CreateMany(ctx, sessionModels); err != nil {
		return fmt.Errorf("mongo ensure sessions indexes: %w", err)
	}

	return nil
}

// databaseFromURI извлекает имя базы данных из URI-пути mongodb.
// Если оно отсутствует или не поддается расшифровке, возвращает значение по умолчанию.
func databaseFromURI(uri string) string {
	u, err := url.Parse(uri)
	if err == nil {
		if name := strings.Trim(u.Path, "/"); name != "" {
			return name
		}
	}
	return defaultDBName
}
