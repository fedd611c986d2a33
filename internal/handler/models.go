package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type TeamRequest struct {
	TeamName string `json:"team_name"`
}

type TeamResponse struct {
	TeamID    int64  `json:"team_id"`
	TeamName  string `json:"team_name"`
	CreatedAt string `json:"created_at,omitempty"`
}

type CreateTeamResponse struct {
	Team TeamResponse `json:"team"`
}

type TeamWithMembersResponse struct {
	TeamID   int64            `json:"team_id"`
	TeamName string           `json:"team_name"`
	Members  []MemberResponse `json:"members"`
}

type TeamDirectoryResponse struct {
	Teams      []TeamWithMembersResponse `json:"teams"`
	Unassigned []MemberResponse          `json:"unassigned"`
}

type JoinRequest struct {
	Username string `json:"username"`
	Age      int    `json:"age"`
	TeamName string `json:"team_name"`
}

type ChangeTeamRequest struct {
	MemberID int64  `json:"member_id"`
	TeamName string `json:"team_name"`
}

type MemberResponse struct {
	MemberID int64  `json:"member_id"`
	Username string `json:"username"`
	Age      int    `json:"age"`
	TeamID   *int64 `json:"team_id"`
}

type MemberEnvelope struct {
	Member MemberResponse `json:"member"`
}

type MemberTeamResponse struct {
	MemberID int64   `json:"member_id"`
	Username string  `json:"username"`
	Age      int     `json:"age"`
	TeamID   *int64  `json:"team_id"`
	TeamName *string `json:"team_name"`
}

type MemberShortResponse struct {
	Username string `json:"username"`
	Age      int    `json:"age"`
}

type PageResponse struct {
	Content    []MemberTeamResponse `json:"content"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	Size       int                  `json:"size"`
	Offset     int64                `json:"offset"`
	Limit      int                  `json:"limit"`
	TotalPages int                  `json:"total_pages"`
	HasNext    bool                 `json:"has_next"`
}

type BulkRenameRequest struct {
	AgeBelow int    `json:"age_below"`
	Username string `json:"username"`
}

// BulkAgeRequest - задается ровно одно из полей.
type BulkAgeRequest struct {
	Delta  *int `json:"delta"`
	Factor *int `json:"factor"`
}

type BulkDeleteRequest struct {
	AgeAbove int `json:"age_above"`
}

type BulkResponse struct {
	Affected int64 `json:"affected"`
}

type AgeStatsResponse struct {
	Count int64   `json:"count"`
	Sum   int64   `json:"sum"`
	Avg   float64 `json:"avg"`
	Min   int     `json:"min"`
	Max   int     `json:"max"`
}

type TeamAgeStatResponse struct {
	TeamName    string  `json:"team_name"`
	MemberCount int64   `json:"member_count"`
	AvgAge      float64 `json:"avg_age"`
}

type AgeBracketResponse struct {
	Bracket string `json:"bracket"`
	Count   int64  `json:"count"`
}

type StatsResponse struct {
	Overall  AgeStatsResponse      `json:"overall"`
	Teams    []TeamAgeStatResponse `json:"teams"`
	Brackets []AgeBracketResponse  `json:"brackets"`
}
