package repository

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"arte-cultura-backend/internal/domain/subscriptions"

	"gorm.io/gorm"
)

// ListSubscriptions returns all subscribers, most recent first.
func (r *Content) ListSubscriptions() ([]subscriptions.Subscription, error) {
	var out []subscriptions.Subscription
	if err := r.db.Order("fecha DESC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *Content) DeleteSubscription(id string) error {
	res := r.db.Delete(&subscriptions.Subscription{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Subscribe inserts a new active subscription unless the email already
// exists. The pre-insert check produces the friendly duplicate outcome; the
// unique index on email closes the race between two concurrent submissions.
func (r *Content) Subscribe(email string) (*subscriptions.Subscription, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrValidation)
	}

	var count int64
	if err := r.db.Model(&subscriptions.Subscription{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrDuplicate
	}

	sub := subscriptions.Subscription{
		Email:  email,
		Fecha:  time.Now(),
		Activo: true,
	}
	if err := r.db.Create(&sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrDuplicate
		}
		return nil, err
	}
	return &sub, nil
}
