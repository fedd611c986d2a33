package domain

import "time"

// Team не хранит список участников: обратная связь строится по запросу через Roster.
type Team struct {
	ID        int64
	Name      string
	CreatedAt time.Time
}

func NewTeam(name string) *Team {
	return &Team{Name: name}
}

// TeamWithMembers - команда вместе с участниками, собранная сервисом.
type TeamWithMembers struct {
	Team    *Team
	Members []*Member
}

// TeamDirectory - все команды с участниками и участники без команды.
type TeamDirectory struct {
	Teams      []*TeamWithMembers
	Unassigned []*Member
}
