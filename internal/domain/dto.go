package domain

// MemberDto - проекция участника без идентификаторов.
type MemberDto struct {
	Username string
	Age      int
}

// MemberTeamDto - строка выборки members LEFT JOIN teams.
// TeamID и TeamName равны nil, если участник не состоит в команде.
type MemberTeamDto struct {
	MemberID int64
	Username string
	Age      int
	TeamID   *int64
	TeamName *string
}
