package domain

import (
	"fmt"
	"time"
)

// Member ссылается на команду через TeamID. Это единственная хранимая сторона связи.
type Member struct {
	ID        int64
	Username  string
	Age       int
	TeamID    *int64
	CreatedAt time.Time
}

// NewMember создает участника и, если команда передана, сразу привязывает его к ней.
func NewMember(username string, age int, team *Team) *Member {
	m := &Member{
		Username: username,
		Age:      age,
	}
	if team != nil {
		m.ChangeTeam(team)
	}
	return m
}

// ChangeTeam переводит участника в другую команду. nil убирает привязку.
func (m *Member) ChangeTeam(team *Team) {
	if team == nil {
		m.TeamID = nil
		return
	}
	id := team.ID
	m.TeamID = &id
}

func (m *Member) InTeam(teamID int64) bool {
	return m.TeamID != nil && *m.TeamID == teamID
}

func (m *Member) String() string {
	return fmt.Sprintf("Member(id=%d, username=%s, age=%d)", m.ID, m.Username, m.Age)
}

// Roster - производный индекс "команда -> участники".
// Собирается из среза участников и не хранится вместе с Team.
type Roster struct {
	byTeam map[int64][]*Member
	free   []*Member
}

func NewRoster(members []*Member) Roster {
	r := Roster{byTeam: make(map[int64][]*Member)}
	for _, m := range members {
		if m.TeamID == nil {
			r.free = append(r.free, m)
			continue
		}
		r.byTeam[*m.TeamID] = append(r.byTeam[*m.TeamID], m)
	}
	return r
}

// MembersOf возвращает участников команды в порядке исходного среза.
func (r Roster) MembersOf(teamID int64) []*Member {
	return r.byTeam[teamID]
}

// Unassigned возвращает участников без команды.
func (r Roster) Unassigned() []*Member {
	return r.free
}

func (r Roster) TeamIDs() []int64 {
	ids := make([]int64, 0, len(r.byTeam))
	for id := range r.byTeam {
		ids = append(ids, id)
	}
	return ids
}
