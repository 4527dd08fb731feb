package storage

import "context"

// ProfileKey is the well-known key the profile record lives under. It is
// the same key the original web version used in local storage.
const ProfileKey = "myarc_user_profile"

// ProfileStore persists the single profile record. Save overwrites the
// whole record; there are no partial updates. Load returns (nil, nil) when
// no profile exists, including when a stored record fails to parse —
// corruption is treated the same as absence and the caller routes the user
// back through onboarding.
type ProfileStore interface {
	Load(ctx context.Context) (*Profile, error)
	Save(ctx context.Context, p *Profile) error
	Clear(ctx context.Context) error
}
