package store

import "context"

var defaultMembers = []InsertTeamMember{
	{Name: "dev", Role: "Member", Avatar: "D", Color: "blue"},
	{Name: "dhruvi", Role: "Member", Avatar: "D", Color: "green"},
	{Name: "krisha", Role: "Member", Avatar: "K", Color: "purple"},
	{Name: "keval", Role: "Member", Avatar: "K", Color: "orange"},
	{Name: "param", Role: "Member", Avatar: "P", Color: "red"},
	{Name: "vivek", Role: "Member", Avatar: "V", Color: "teal"},
}

// SeedDefaultMembers inserts the default roster, skipping names that
// already exist so restarts do not duplicate members.
func SeedDefaultMembers(ctx context.Context, s Store) error {
	existing, err := s.ListTeamMembers(ctx)
	if err != nil {
		return err
	}

	known := make(map[string]struct{}, len(existing))
	for _, member := range existing {
		known[member.Name] = struct{}{}
	}

	for _, member := range defaultMembers {
		if _, ok := known[member.Name]; ok {
			continue
		}
		if _, err := s.CreateTeamMember(ctx, member); err != nil {
			return err
		}
	}
	return nil
}
