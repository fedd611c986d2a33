package search

import "github.com/bagdasarian/member-search/internal/predicate"

// Алиасы таблиц во всех запросах поиска:
//
//	FROM members m LEFT JOIN teams t ON m.team_id = t.id
const (
	MemberAlias = "m"
	TeamAlias   = "t"

	MemberTable = "members " + MemberAlias
	TeamTable   = "teams " + TeamAlias
)

type memberColumns struct {
	ID       predicate.NumberPath
	Username predicate.StringPath
	Age      predicate.NumberPath
	TeamID   predicate.NumberPath
}

type teamColumns struct {
	ID   predicate.NumberPath
	Name predicate.StringPath
}

var (
	Members = memberColumns{
		ID:       predicate.NewNumberPath(MemberAlias + ".id"),
		Username: predicate.NewStringPath(MemberAlias + ".username"),
		Age:      predicate.NewNumberPath(MemberAlias + ".age"),
		TeamID:   predicate.NewNumberPath(MemberAlias + ".team_id"),
	}

	Teams = teamColumns{
		ID:   predicate.NewNumberPath(TeamAlias + ".id"),
		Name: predicate.NewStringPath(TeamAlias + ".name"),
	}
)

// JoinTeams - условие LEFT JOIN участников с командами.
func JoinTeams() string {
	return TeamTable + " ON " + Members.TeamID.Column() + " = " + Teams.ID.Column()
}
