package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/proactivefit/backend/internal/planner"
	"github.com/redis/go-redis/v9"
)

var ErrPlanNotFound = errors.New("plan not found")

// PlanStore persists at most one workout plan per nickname, as a single
// serialized document. Save replaces any existing plan.
type PlanStore interface {
	Save(ctx context.Context, nickname string, plan *planner.Plan) error
	Get(ctx context.Context, nickname string) (*planner.Plan, error)
	Delete(ctx context.Context, nickname string) error
}

const planKeyPrefix = "workout_plan:"

// RedisPlanStore keeps each plan under one redis key. Plans have no TTL;
// they live until explicitly deleted or overwritten.
type RedisPlanStore struct {
	client *redis.Client
}

func NewRedisPlanStore(client *redis.Client) *RedisPlanStore {
	return &RedisPlanStore{client: client}
}

func (s *RedisPlanStore) Save(ctx context.Context, nickname string, plan *planner.Plan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to serialize plan: %w", err)
	}
	if err := s.client.Set(ctx, planKeyPrefix+nickname, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store plan: %w", err)
	}
	return nil
}

func (s *RedisPlanStore) Get(ctx context.Context, nickname string) (*planner.Plan, error) {
	data, err := s.client.Get(ctx, planKeyPrefix+nickname).Bytes()
	if err == redis.Nil {
		return nil, ErrPlanNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load plan: %w", err)
	}

	var plan planner.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to decode stored plan: %w", err)
	}
	return &plan, nil
}

func (s *RedisPlanStore) Delete(ctx context.Context, nickname string) error {
	if err := s.client.Del(ctx, planKeyPrefix+nickname).Err(); err != nil {
		return fmt.Errorf("failed to delete plan: %w", err)
	}
	return nil
}

// MemoryPlanStore is the in-process fallback used in tests and redis-less
// deployments.
type MemoryPlanStore struct {
	mu    sync.RWMutex
	plans map[string][]byte
}

func NewMemoryPlanStore() *MemoryPlanStore {
	return &MemoryPlanStore{plans: make(map[string][]byte)}
}

func (s *MemoryPlanStore) Save(ctx context.Context, nickname string, plan *planner.Plan) error {
	data, err := json.Marshal(plan)
	if err != nil {
		return fmt.Errorf("failed to serialize plan: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.plans[nickname] = data
	return nil
}

func (s *MemoryPlanStore) Get(ctx context.Context, nickname string) (*planner.Plan, error) {
	s.mu.RLock()
	data, ok := s.plans[nickname]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrPlanNotFound
	}

	var plan planner.Plan
	if err := json.Unmarshal(data, &plan); err != nil {
		return nil, fmt.Errorf("failed to decode stored plan: %w", err)
	}
	return &plan, nil
}

func (s *MemoryPlanStore) Delete(ctx context.Context, nickname string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.plans, nickname)
	return nil
}
