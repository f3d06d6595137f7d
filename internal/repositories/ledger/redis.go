package ledger

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/KirkDiggler/rewardsbot/internal/models"
	"github.com/KirkDiggler/rewardsbot/internal/tier"
	"github.com/redis/go-redis/v9"
)

const (
	// Key prefixes for Redis
	keyPrefix = "rewards:"
	usersKey  = keyPrefix + "users"
	boardKey  = keyPrefix + "board:"

	fieldPoints      = "points"
	fieldCurrentTier = "current_tier"
	fieldLastDaily   = "last_daily"
	fieldUsername    = "username"
	fieldTotalSpent  = "total_spent"

	// optimistic transactions give up after this many watch conflicts
	maxTxRetries = 3
)

func accountKey(userID string) string       { return keyPrefix + "user:" + userID }
func tiersKey(userID string) string         { return accountKey(userID) + ":tiers" }
func purchasesKey(userID string) string     { return accountKey(userID) + ":purchases" }
func purchaseOrderKey(userID string) string { return accountKey(userID) + ":purchase_order" }
func adminActionsKey(userID string) string  { return accountKey(userID) + ":admin_actions" }
func boardName(b Board) string              { return boardKey + string(b) }

var errEmptyUserID = fmt.Errorf("%w: user ID cannot be empty", models.ErrInvalidInput)

// incrementScript applies a balance delta and mirrors the result onto the points board.
// Returns {1, balance} or {0, balance} when RequireBalance refused the delta.
var incrementScript = redis.NewScript(`
local cur = tonumber(redis.call('HGET', KEYS[1], 'points') or '0')
local delta = tonumber(ARGV[1])
if ARGV[2] == '1' and delta < 0 and cur + delta < 0 then
	return {0, cur}
end
local v = redis.call('HINCRBY', KEYS[1], 'points', delta)
redis.call('ZADD', KEYS[2], v, ARGV[3])
redis.call('SADD', KEYS[3], ARGV[3])
if ARGV[4] ~= '' then
	redis.call('HSET', KEYS[1], 'username', ARGV[4])
end
return {1, v}
`)

// dailyScript credits the daily reward when the cooldown has elapsed.
// Returns {1, balance} or {0, lastClaimMs}.
var dailyScript = redis.NewScript(`
local last = tonumber(redis.call('HGET', KEYS[1], 'last_daily') or '0')
local now = tonumber(ARGV[1])
if last > 0 and now - last < tonumber(ARGV[2]) then
	return {0, last}
end
local v = redis.call('HINCRBY', KEYS[1], 'points', ARGV[3])
redis.call('HSET', KEYS[1], 'last_daily', ARGV[1])
redis.call('ZADD', KEYS[2], v, ARGV[4])
redis.call('SADD', KEYS[3], ARGV[4])
if ARGV[5] ~= '' then
	redis.call('HSET', KEYS[1], 'username', ARGV[5])
end
return {1, v}
`)

// Config holds configuration for the Redis ledger repository
type Config struct {
	// Redis client
	RedisClient *redis.Client
}

// redisRepository implements the Repository interface using Redis
type redisRepository struct {
	client *redis.Client
}

// NewRedis creates a new Redis-backed ledger repository
func NewRedis(cfg *Config) (*redisRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RedisClient == nil {
		return nil, errors.New("redis client cannot be nil")
	}

	// Test connection
	if err := cfg.RedisClient.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &redisRepository{
		client: cfg.RedisClient,
	}, nil
}

// GetAccount loads the record, tier history and optionally purchases
func (r *redisRepository) GetAccount(ctx context.Context, input *GetAccountInput) (*models.Account, error) {
	if input == nil || input.UserID == "" {
		return nil, errEmptyUserID
	}

	pipe := r.client.Pipeline()
	fieldsCmd := pipe.HGetAll(ctx, accountKey(input.UserID))
	tiersCmd := pipe.HGetAll(ctx, tiersKey(input.UserID))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, models.Unavailable("get account", err)
	}

	fields := fieldsCmd.Val()
	account := &models.Account{
		UserID:      input.UserID,
		Username:    fields[fieldUsername],
		Points:      atoi(fields[fieldPoints]),
		CurrentTier: fields[fieldCurrentTier],
		TierHistory: make(map[tier.Tier]time.Time),
	}
	if ms := atoi64(fields[fieldLastDaily]); ms > 0 {
		account.LastDaily = time.UnixMilli(ms)
	}
	if v, err := strconv.ParseFloat(fields[fieldTotalSpent], 64); err == nil {
		account.TotalSpent = v
	}

	for name, ms := range tiersCmd.Val() {
		t, err := tier.Parse(name)
		if err != nil {
			continue
		}
		account.TierHistory[t] = time.UnixMilli(atoi64(ms))
	}

	if input.WithPurchases {
		purchases, err := r.loadPurchases(ctx, input.UserID)
		if err != nil {
			return nil, err
		}
		account.Purchases = purchases
	}

	return account, nil
}

// IncrementPoints runs the increment script
func (r *redisRepository) IncrementPoints(ctx context.Context, input *IncrementPointsInput) (*IncrementPointsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errEmptyUserID
	}

	require := "0"
	if input.RequireBalance {
		require = "1"
	}

	res, err := incrementScript.Run(ctx, r.client,
		[]string{accountKey(input.UserID), boardName(BoardPoints), usersKey},
		input.Delta, require, input.UserID, input.Username,
	).Int64Slice()
	if err != nil {
		return nil, models.Unavailable("increment points", err)
	}
	if len(res) != 2 {
		return nil, models.Unavailable("increment points", fmt.Errorf("unexpected script reply %v", res))
	}
	if res[0] == 0 {
		return &IncrementPointsOutput{Points: int(res[1])}, models.ErrInsufficientBalance
	}

	return &IncrementPointsOutput{Points: int(res[1])}, nil
}

// SetPoints overwrites the balance and the points board score
func (r *redisRepository) SetPoints(ctx context.Context, input *SetPointsInput) error {
	if input == nil || input.UserID == "" {
		return errEmptyUserID
	}

	_, err := r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, accountKey(input.UserID), fieldPoints, input.Points)
		if input.Username != "" {
			pipe.HSet(ctx, accountKey(input.UserID), fieldUsername, input.Username)
		}
		pipe.ZAdd(ctx, boardName(BoardPoints), redis.Z{Score: float64(input.Points), Member: input.UserID})
		pipe.SAdd(ctx, usersKey, input.UserID)
		return nil
	})
	if err != nil {
		return models.Unavailable("set points", err)
	}

	return nil
}

// Transfer debits the sender and credits the recipient under WATCH
func (r *redisRepository) Transfer(ctx context.Context, input *TransferInput) (*TransferOutput, error) {
	if input == nil || input.FromID == "" || input.ToID == "" {
		return nil, errEmptyUserID
	}

	fromKey := accountKey(input.FromID)
	toKey := accountKey(input.ToID)

	var out TransferOutput
	txf := func(tx *redis.Tx) error {
		fromBal, err := hgetInt(ctx, tx, fromKey, fieldPoints)
		if err != nil {
			return err
		}
		if fromBal < input.Amount {
			return models.ErrInsufficientBalance
		}
		toBal, err := hgetInt(ctx, tx, toKey, fieldPoints)
		if err != nil {
			return err
		}

		out.FromPoints = fromBal - input.Amount
		out.ToPoints = toBal + input.Received

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, fromKey, fieldPoints, out.FromPoints)
			pipe.HSet(ctx, toKey, fieldPoints, out.ToPoints)
			pipe.ZAdd(ctx, boardName(BoardPoints),
				redis.Z{Score: float64(out.FromPoints), Member: input.FromID},
				redis.Z{Score: float64(out.ToPoints), Member: input.ToID},
			)
			pipe.SAdd(ctx, usersKey, input.FromID, input.ToID)
			return nil
		})
		return err
	}

	if err := r.watch(ctx, txf, fromKey, toKey); err != nil {
		if errors.Is(err, models.ErrInsufficientBalance) {
			return nil, err
		}
		return nil, models.Unavailable("transfer", err)
	}

	return &out, nil
}

// RecordPurchase stores or merges a purchase keyed by transaction id
func (r *redisRepository) RecordPurchase(ctx context.Context, input *RecordPurchaseInput) (*RecordPurchaseOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errEmptyUserID
	}
	if input.Purchase == nil || input.Purchase.TransactionID == "" {
		return nil, fmt.Errorf("%w: purchase and transaction ID cannot be empty", models.ErrInvalidInput)
	}

	acctKey := accountKey(input.UserID)
	purKey := purchasesKey(input.UserID)
	txID := input.Purchase.TransactionID

	var out RecordPurchaseOutput
	txf := func(tx *redis.Tx) error {
		balance, err := hgetInt(ctx, tx, acctKey, fieldPoints)
		if err != nil {
			return err
		}
		out.PointsBefore = balance

		existingJSON, err := tx.HGet(ctx, purKey, txID).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}

		if err == nil {
			var existing models.Purchase
			if err := json.Unmarshal([]byte(existingJSON), &existing); err != nil {
				return fmt.Errorf("failed to unmarshal purchase %s: %w", txID, err)
			}
			for _, label := range input.Purchase.Items {
				existing.AddItem(label)
			}
			merged, err := json.Marshal(&existing)
			if err != nil {
				return fmt.Errorf("failed to marshal purchase: %w", err)
			}

			out.Replayed = true
			out.Purchase = &existing
			out.PointsAfter = balance
			_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
				pipe.HSet(ctx, purKey, txID, merged)
				return nil
			})
			return err
		}

		purchaseJSON, err := json.Marshal(input.Purchase)
		if err != nil {
			return fmt.Errorf("failed to marshal purchase: %w", err)
		}

		out.Replayed = false
		out.Purchase = input.Purchase
		out.PointsAfter = balance + input.Purchase.PointsAwarded
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, purKey, txID, purchaseJSON)
			pipe.RPush(ctx, purchaseOrderKey(input.UserID), txID)
			pipe.HSet(ctx, acctKey, fieldPoints, out.PointsAfter)
			pipe.HIncrByFloat(ctx, acctKey, fieldTotalSpent, input.Purchase.Price)
			if input.Username != "" {
				pipe.HSet(ctx, acctKey, fieldUsername, input.Username)
			}
			pipe.ZAdd(ctx, boardName(BoardPoints), redis.Z{Score: float64(out.PointsAfter), Member: input.UserID})
			pipe.ZIncrBy(ctx, boardName(BoardSpent), input.Purchase.Price, input.UserID)
			pipe.SAdd(ctx, usersKey, input.UserID)
			return nil
		})
		return err
	}

	if err := r.watch(ctx, txf, acctKey, purKey); err != nil {
		return nil, models.Unavailable("record purchase", err)
	}

	return &out, nil
}

// RemovePurchase deletes the purchase at Index. The balance may go negative.
func (r *redisRepository) RemovePurchase(ctx context.Context, input *RemovePurchaseInput) (*RemovePurchaseOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errEmptyUserID
	}

	acctKey := accountKey(input.UserID)
	purKey := purchasesKey(input.UserID)
	orderKey := purchaseOrderKey(input.UserID)

	var out RemovePurchaseOutput
	var notFound bool
	txf := func(tx *redis.Tx) error {
		notFound = false
		ids, err := tx.LRange(ctx, orderKey, 0, -1).Result()
		if err != nil {
			return err
		}
		if input.Index < 0 || input.Index >= len(ids) {
			notFound = true
			return nil
		}
		txID := ids[input.Index]

		raw, err := tx.HGet(ctx, purKey, txID).Result()
		if err != nil {
			return err
		}
		var purchase models.Purchase
		if err := json.Unmarshal([]byte(raw), &purchase); err != nil {
			return fmt.Errorf("failed to unmarshal purchase %s: %w", txID, err)
		}

		balance, err := hgetInt(ctx, tx, acctKey, fieldPoints)
		if err != nil {
			return err
		}

		out.Purchase = &purchase
		out.PointsRemoved = int(math.Floor(purchase.Price))
		out.Points = balance - out.PointsRemoved

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.LRem(ctx, orderKey, 1, txID)
			pipe.HDel(ctx, purKey, txID)
			pipe.HSet(ctx, acctKey, fieldPoints, out.Points)
			pipe.HIncrByFloat(ctx, acctKey, fieldTotalSpent, -purchase.Price)
			pipe.ZAdd(ctx, boardName(BoardPoints), redis.Z{Score: float64(out.Points), Member: input.UserID})
			pipe.ZIncrBy(ctx, boardName(BoardSpent), -purchase.Price, input.UserID)
			return nil
		})
		return err
	}

	if err := r.watch(ctx, txf, acctKey, purKey, orderKey); err != nil {
		return nil, models.Unavailable("remove purchase", err)
	}
	if notFound {
		return nil, fmt.Errorf("%w: purchase %d for user %s", models.ErrNotFound, input.Index, input.UserID)
	}

	return &out, nil
}

// ClaimDaily runs the daily script
func (r *redisRepository) ClaimDaily(ctx context.Context, input *ClaimDailyInput) (*ClaimDailyOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errEmptyUserID
	}

	res, err := dailyScript.Run(ctx, r.client,
		[]string{accountKey(input.UserID), boardName(BoardPoints), usersKey},
		input.Now.UnixMilli(), input.Cooldown.Milliseconds(), input.Amount, input.UserID, input.Username,
	).Int64Slice()
	if err != nil {
		return nil, models.Unavailable("claim daily", err)
	}
	if len(res) != 2 {
		return nil, models.Unavailable("claim daily", fmt.Errorf("unexpected script reply %v", res))
	}

	if res[0] == 0 {
		return &ClaimDailyOutput{Claimed: false, LastClaim: time.UnixMilli(res[1])}, nil
	}
	return &ClaimDailyOutput{Claimed: true, Points: int(res[1])}, nil
}

// ResetDaily clears last_daily
func (r *redisRepository) ResetDaily(ctx context.Context, input *ResetDailyInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	userIDs, err := r.targets(ctx, input.UserID)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	for _, id := range userIDs {
		pipe.HDel(ctx, accountKey(id), fieldLastDaily)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return models.Unavailable("reset daily", err)
	}

	return nil
}

// SetCurrentTier stores the lowercase tier name
func (r *redisRepository) SetCurrentTier(ctx context.Context, input *SetCurrentTierInput) error {
	if input == nil || input.UserID == "" {
		return errEmptyUserID
	}

	pipe := r.client.Pipeline()
	pipe.HSet(ctx, accountKey(input.UserID), fieldCurrentTier, input.Tier.Key())
	pipe.SAdd(ctx, usersKey, input.UserID)
	if _, err := pipe.Exec(ctx); err != nil {
		return models.Unavailable("set current tier", err)
	}

	return nil
}

// StampTier merges one tier history entry
func (r *redisRepository) StampTier(ctx context.Context, input *StampTierInput) error {
	if input == nil || input.UserID == "" {
		return errEmptyUserID
	}

	if err := r.client.HSet(ctx, tiersKey(input.UserID), input.Tier.Key(), input.At.UnixMilli()).Err(); err != nil {
		return models.Unavailable("stamp tier", err)
	}

	return nil
}

// ClearTierHistory deletes whole histories or a single tier's entry
func (r *redisRepository) ClearTierHistory(ctx context.Context, input *ClearTierHistoryInput) error {
	if input == nil {
		return errors.New("input cannot be nil")
	}

	userIDs, err := r.targets(ctx, input.UserID)
	if err != nil {
		return err
	}

	pipe := r.client.Pipeline()
	for _, id := range userIDs {
		if input.Tier != "" {
			pipe.HDel(ctx, tiersKey(id), input.Tier.Key())
		} else {
			pipe.Del(ctx, tiersKey(id))
		}
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return models.Unavailable("clear tier history", err)
	}

	return nil
}

// AddAdminAction appends the JSON-encoded action
func (r *redisRepository) AddAdminAction(ctx context.Context, input *AddAdminActionInput) error {
	if input == nil || input.UserID == "" {
		return errEmptyUserID
	}
	if input.Action == nil {
		return fmt.Errorf("%w: action cannot be nil", models.ErrInvalidInput)
	}

	actionJSON, err := json.Marshal(input.Action)
	if err != nil {
		return fmt.Errorf("failed to marshal admin action: %w", err)
	}

	if err := r.client.RPush(ctx, adminActionsKey(input.UserID), actionJSON).Err(); err != nil {
		return models.Unavailable("add admin action", err)
	}

	return nil
}

// GetAdminActions reads the audit list
func (r *redisRepository) GetAdminActions(ctx context.Context, input *GetAdminActionsInput) (*GetAdminActionsOutput, error) {
	if input == nil || input.UserID == "" {
		return nil, errEmptyUserID
	}

	raw, err := r.client.LRange(ctx, adminActionsKey(input.UserID), 0, -1).Result()
	if err != nil {
		return nil, models.Unavailable("get admin actions", err)
	}

	actions := make([]*models.AdminAction, 0, len(raw))
	for _, item := range raw {
		var action models.AdminAction
		if err := json.Unmarshal([]byte(item), &action); err != nil {
			return nil, fmt.Errorf("failed to unmarshal admin action: %w", err)
		}
		actions = append(actions, &action)
	}

	return &GetAdminActionsOutput{Actions: actions}, nil
}

// ListUsers reads the user set
func (r *redisRepository) ListUsers(ctx context.Context) (*ListUsersOutput, error) {
	ids, err := r.client.SMembers(ctx, usersKey).Result()
	if err != nil {
		return nil, models.Unavailable("list users", err)
	}

	return &ListUsersOutput{UserIDs: ids}, nil
}

// Top reads the highest scores of a board with usernames
func (r *redisRepository) Top(ctx context.Context, input *TopInput) (*TopOutput, error) {
	if input == nil || input.Limit <= 0 {
		return nil, fmt.Errorf("%w: limit must be positive", models.ErrInvalidInput)
	}

	scores, err := r.client.ZRevRangeByScoreWithScores(ctx, boardName(input.Board), &redis.ZRangeBy{
		Min:   "(0",
		Max:   "+inf",
		Count: int64(input.Limit),
	}).Result()
	if err != nil {
		return nil, models.Unavailable("read board", err)
	}

	if len(scores) == 0 {
		return &TopOutput{Entries: []*models.LeaderboardEntry{}}, nil
	}

	pipe := r.client.Pipeline()
	names := make([]*redis.StringCmd, len(scores))
	for i, z := range scores {
		names[i] = pipe.HGet(ctx, accountKey(z.Member.(string)), fieldUsername)
	}
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, models.Unavailable("read board usernames", err)
	}

	entries := make([]*models.LeaderboardEntry, len(scores))
	for i, z := range scores {
		entries[i] = &models.LeaderboardEntry{
			Rank:     i + 1,
			UserID:   z.Member.(string),
			Username: names[i].Val(),
			Score:    z.Score,
		}
	}

	return &TopOutput{Entries: entries}, nil
}

// SpendSince scans every user's purchases
func (r *redisRepository) SpendSince(ctx context.Context, input *SpendSinceInput) (*SpendSinceOutput, error) {
	if input == nil {
		return nil, errors.New("input cannot be nil")
	}

	users, err := r.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	pipe := r.client.Pipeline()
	cmds := make(map[string]*redis.StringSliceCmd, len(users.UserIDs))
	for _, id := range users.UserIDs {
		cmds[id] = pipe.HVals(ctx, purchasesKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, models.Unavailable("read purchases", err)
	}

	cutoff := input.Since.UnixMilli()
	totals := make(map[string]int)
	for id, cmd := range cmds {
		sum := 0
		for _, raw := range cmd.Val() {
			var p models.Purchase
			if err := json.Unmarshal([]byte(raw), &p); err != nil {
				return nil, fmt.Errorf("failed to unmarshal purchase for %s: %w", id, err)
			}
			if p.Timestamp > cutoff {
				sum += int(math.Floor(p.Price))
			}
		}
		if sum > 0 {
			totals[id] = sum
		}
	}

	return &SpendSinceOutput{Totals: totals}, nil
}

func (r *redisRepository) loadPurchases(ctx context.Context, userID string) ([]*models.Purchase, error) {
	ids, err := r.client.LRange(ctx, purchaseOrderKey(userID), 0, -1).Result()
	if err != nil {
		return nil, models.Unavailable("list purchases", err)
	}
	if len(ids) == 0 {
		return []*models.Purchase{}, nil
	}

	raw, err := r.client.HMGet(ctx, purchasesKey(userID), ids...).Result()
	if err != nil {
		return nil, models.Unavailable("get purchases", err)
	}

	purchases := make([]*models.Purchase, 0, len(raw))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			// order entry without a body; skipped
			continue
		}
		var p models.Purchase
		if err := json.Unmarshal([]byte(s), &p); err != nil {
			return nil, fmt.Errorf("failed to unmarshal purchase %s: %w", ids[i], err)
		}
		purchases = append(purchases, &p)
	}

	return purchases, nil
}

// watch retries an optimistic transaction on conflicting writes
func (r *redisRepository) watch(ctx context.Context, fn func(*redis.Tx) error, keys ...string) error {
	var err error
	for i := 0; i < maxTxRetries; i++ {
		err = r.client.Watch(ctx, fn, keys...)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}

func (r *redisRepository) targets(ctx context.Context, userID string) ([]string, error) {
	if userID != "" {
		return []string{userID}, nil
	}
	users, err := r.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	return users.UserIDs, nil
}

type hashGetter interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
}

func hgetInt(ctx context.Context, c hashGetter, key, field string) (int, error) {
	v, err := c.HGet(ctx, key, field).Int()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return v, err
}

func atoi(s string) int {
	v, _ := strconv.Atoi(s)
	return v
}

func atoi64(s string) int64 {
	v, _ := strconv.ParseInt(s, 10, 64)
	return v
}
