package engine

import "github.com/parthsharma232007/arc-ascension/internal/storage"

// builtinAvatars is the fixed avatar catalog offered at onboarding, each
// owned by an arc so the wizard can show the ones matching the chosen arc
// first.
func builtinAvatars() []storage.Avatar {
	return []storage.Avatar{
		{
			ID:       "goku",
			Name:     "Son Goku",
			Series:   "Dragon Ball Z",
			ImageURL: "https://images.unsplash.com/photo-1578632767115-351597cf2477?w=400&h=400&fit=crop",
			Arc:      string(ArcHero),
		},
		{
			ID:       "zoro",
			Name:     "Roronoa Zoro",
			Series:   "One Piece",
			ImageURL: "https://images.unsplash.com/photo-1578632292335-df3abbb0d586?w=400&h=400&fit=crop",
			Arc:      string(ArcHero),
		},
		{
			ID:       "eren",
			Name:     "Eren Yeager",
			Series:   "Attack on Titan",
			ImageURL: "https://images.unsplash.com/photo-1614732414444-096e5f1122d5?w=400&h=400&fit=crop",
			Arc:      string(ArcVillain),
		},
		{
			ID:       "gojo",
			Name:     "Gojo Satoru",
			Series:   "Jujutsu Kaisen",
			ImageURL: "https://images.unsplash.com/photo-1578632292335-df3abbb0d586?w=400&h=400&fit=crop",
			Arc:      string(ArcInter),
		},
		{
			ID:       "itachi",
			Name:     "Itachi Uchiha",
			Series:   "Naruto",
			ImageURL: "https://images.unsplash.com/photo-1614732414444-096e5f1122d5?w=400&h=400&fit=crop",
			Arc:      string(ArcRedemption),
		},
		{
			ID:       "levi",
			Name:     "Levi Ackerman",
			Series:   "Attack on Titan",
			ImageURL: "https://images.unsplash.com/photo-1578632767115-351597cf2477?w=400&h=400&fit=crop",
			Arc:      string(ArcInter),
		},
	}
}

// Avatars returns the whole catalog.
func Avatars() []storage.Avatar {
	return builtinAvatars()
}

// AvatarsForArc returns the catalog with avatars owned by arc first,
// keeping catalog order within each group.
func AvatarsForArc(arc Arc) []storage.Avatar {
	all := builtinAvatars()
	out := make([]storage.Avatar, 0, len(all))
	for _, a := range all {
		if a.Arc == string(arc) {
			out = append(out, a)
		}
	}
	for _, a := range all {
		if a.Arc != string(arc) {
			out = append(out, a)
		}
	}
	return out
}

// FindAvatar resolves an avatar id against the catalog.
func FindAvatar(id string) (storage.Avatar, bool) {
	for _, a := range builtinAvatars() {
		if a.ID == id {
			return a, true
		}
	}
	return storage.Avatar{}, false
}
