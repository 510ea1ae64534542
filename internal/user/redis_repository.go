package user

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
)

var _ Repository = (*RedisRepository)(nil)

// saveScript stores (id, name) pairs from ARGV in the users hash, allocating a
// fresh id from the sequence key for zero or unknown ids. It returns the ids in
// argument order. Running it as a script makes every batch atomic.
var saveScript = redis.NewScript(`
local ids = {}
for i = 1, #ARGV, 2 do
  local id = ARGV[i]
  if id == "0" or redis.call("HEXISTS", KEYS[1], id) == 0 then
    id = tostring(redis.call("INCR", KEYS[2]))
  end
  redis.call("HSET", KEYS[1], id, ARGV[i + 1])
  ids[#ids + 1] = tonumber(id)
end
return ids
`)

// RedisRepository stores users as fields of a single Redis hash keyed by id.
type RedisRepository struct {
	client  redis.UniversalClient
	hashKey string
	seqKey  string
}

func (r *RedisRepository) Save(ctx context.Context, u User) (User, error) {
	ids, err := r.run(ctx, []User{u})
	if err != nil {
		return User{}, fmt.Errorf("%w: save user %q: %w", ErrPersistence, u.Name, err)
	}

	return User{ID: ids[0], Name: u.Name}, nil
}

func (r *RedisRepository) SaveAll(ctx context.Context, users []User) error {
	if len(users) == 0 {
		return nil
	}

	if _, err := r.run(ctx, users); err != nil {
		return fmt.Errorf("%w: save %d users: %w", ErrPersistence, len(users), err)
	}
	return nil
}

func (r *RedisRepository) FindAll(ctx context.Context) ([]User, error) {
	fields, err := r.client.HGetAll(ctx, r.hashKey).Result()
	if err != nil {
		return nil, fmt.Errorf("%w: list users: %w", ErrPersistence, err)
	}

	users := make([]User, 0, len(fields))
	for field, name := range fields {
		id, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: parse user id %q: %w", ErrPersistence, field, err)
		}
		users = append(users, User{ID: id, Name: name})
	}
	return users, nil
}

func (r *RedisRepository) run(ctx context.Context, users []User) ([]int64, error) {
	args := make([]any, 0, len(users)*2)
	for _, u := range users {
		args = append(args, strconv.FormatInt(u.ID, 10), u.Name)
	}

	ids, err := saveScript.Run(ctx, r.client, []string{r.hashKey, r.seqKey}, args...).Int64Slice()
	if err != nil {
		return nil, err
	}

	if len(ids) != len(users) {
		return nil, fmt.Errorf("script returned %d ids for %d users", len(ids), len(users))
	}
	return ids, nil
}

// NewRedisRepository keeps users under "<prefix>:users" and the id sequence under
// "<prefix>:users:seq".
func NewRedisRepository(client redis.UniversalClient, prefix string) *RedisRepository {
	return &RedisRepository{
		client:  client,
		hashKey: prefix + ":users",
		seqKey:  prefix + ":users:seq",
	}
}
