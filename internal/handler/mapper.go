package handler

import (
	"time"

	"github.com/bagdasarian/member-search/internal/domain"
)

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	var createdAt string
	if !team.CreatedAt.IsZero() {
		createdAt = team.CreatedAt.Format(time.RFC3339)
	}

	return TeamResponse{
		TeamID:    team.ID,
		TeamName:  team.Name,
		CreatedAt: createdAt,
	}
}

func domainTeamWithMembersToHTTP(team *domain.TeamWithMembers) TeamWithMembersResponse {
	return TeamWithMembersResponse{
		TeamID:   team.Team.ID,
		TeamName: team.Team.Name,
		Members:  domainMembersToHTTP(team.Members),
	}
}

func domainTeamDirectoryToHTTP(directory *domain.TeamDirectory) TeamDirectoryResponse {
	teams := make([]TeamWithMembersResponse, 0, len(directory.Teams))
	for _, team := range directory.Teams {
		teams = append(teams, domainTeamWithMembersToHTTP(team))
	}

	return TeamDirectoryResponse{
		Teams:      teams,
		Unassigned: domainMembersToHTTP(directory.Unassigned),
	}
}

func domainMemberToHTTP(member *domain.Member) MemberResponse {
	return MemberResponse{
		MemberID: member.ID,
		Username: member.Username,
		Age:      member.Age,
		TeamID:   member.TeamID,
	}
}

func domainMembersToHTTP(members []*domain.Member) []MemberResponse {
	result := make([]MemberResponse, 0, len(members))
	for _, member := range members {
		result = append(result, domainMemberToHTTP(member))
	}
	return result
}

func domainMemberTeamsToHTTP(rows []domain.MemberTeamDto) []MemberTeamResponse {
	result := make([]MemberTeamResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, MemberTeamResponse{
			MemberID: row.MemberID,
			Username: row.Username,
			Age:      row.Age,
			TeamID:   row.TeamID,
			TeamName: row.TeamName,
		})
	}
	return result
}

func domainMemberDtosToHTTP(dtos []domain.MemberDto) []MemberShortResponse {
	result := make([]MemberShortResponse, 0, len(dtos))
	for _, dto := range dtos {
		result = append(result, MemberShortResponse{Username: dto.Username, Age: dto.Age})
	}
	return result
}

func domainPageToHTTP(page *domain.Page[domain.MemberTeamDto]) PageResponse {
	return PageResponse{
		Content:    domainMemberTeamsToHTTP(page.Content),
		Total:      page.Total,
		Page:       page.Number(),
		Size:       page.Size(),
		Offset:     page.Offset(),
		Limit:      page.Limit(),
		TotalPages: page.TotalPages(),
		HasNext:    page.HasNext(),
	}
}

func domainStatsToHTTP(stats *domain.Stats) StatsResponse {
	teams := make([]TeamAgeStatResponse, 0, len(stats.Teams))
	for _, stat := range stats.Teams {
		teams = append(teams, TeamAgeStatResponse{
			TeamName:    stat.TeamName,
			MemberCount: stat.MemberCount,
			AvgAge:      stat.AvgAge,
		})
	}

	brackets := make([]AgeBracketResponse, 0, len(stats.Brackets))
	for _, stat := range stats.Brackets {
		brackets = append(brackets, AgeBracketResponse{Bracket: stat.Bracket, Count: stat.Count})
	}

	var overall AgeStatsResponse
	if stats.Overall != nil {
		overall = AgeStatsResponse{
			Count: stats.Overall.Count,
			Sum:   stats.Overall.Sum,
			Avg:   stats.Overall.Avg,
			Min:   stats.Overall.Min,
			Max:   stats.Overall.Max,
		}
	}

	return StatsResponse{
		Overall:  overall,
		Teams:    teams,
		Brackets: brackets,
	}
}
