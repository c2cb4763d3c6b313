package repository

import "context"

// GetSessionUserID returns the persisted session pointer, if any.
func (r *Repository) GetSessionUserID(ctx context.Context) (string, bool, error) {
	id, found, err := r.readString(ctx, r.key(keySession))
	if err != nil || !found || id == "" {
		return "", false, err
	}
	return id, true, nil
}

func (r *Repository) SetSessionUserID(ctx context.Context, userID string) error {
	return r.writeString(ctx, r.key(keySession), userID)
}

func (r *Repository) ClearSession(ctx context.Context) error {
	return r.delete(ctx, r.key(keySession))
}
