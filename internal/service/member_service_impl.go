package service

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/bagdasarian/member-search/internal/domain"
	"github.com/bagdasarian/member-search/internal/repository"
	"github.com/bagdasarian/member-search/internal/search"
)

type memberService struct {
	tx         TxManager
	teamRepo   repository.TeamRepository
	memberRepo repository.MemberRepository
	bulkRepo   repository.MemberBulkRepository
	log        *zap.SugaredLogger
}

func NewMemberService(
	tx TxManager,
	teamRepo repository.TeamRepository,
	memberRepo repository.MemberRepository,
	bulkRepo repository.MemberBulkRepository,
	log *zap.SugaredLogger,
) MemberService {
	return &memberService{
		tx:         tx,
		teamRepo:   teamRepo,
		memberRepo: memberRepo,
		bulkRepo:   bulkRepo,
		log:        log.Named("service.member"),
	}
}

func (s *memberService) Join(ctx context.Context, username string, age int, teamName string) (*domain.Member, error) {
	if age < 0 {
		return nil, domain.NewBadRequestError("age must not be negative")
	}

	var member *domain.Member
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		team, err := s.findTeam(ctx, teamName)
		if err != nil {
			return err
		}

		member = domain.NewMember(username, age, team)
		return s.memberRepo.Save(ctx, member)
	})
	if err != nil {
		return nil, err
	}

	s.log.Infow("member joined", "member_id", member.ID, "team_name", teamName)

	return member, nil
}

func (s *memberService) ChangeTeam(ctx context.Context, memberID int64, teamName string) (*domain.Member, error) {
	var member *domain.Member
	err := s.tx.Do(ctx, func(ctx context.Context) error {
		var err error
		member, err = s.memberRepo.FindByID(ctx, memberID)
		if err != nil {
			return notFound(err, fmt.Sprintf("member with id %d", memberID))
		}

		team, err := s.findTeam(ctx, teamName)
		if err != nil {
			return err
		}

		member.ChangeTeam(team)
		return s.memberRepo.Save(ctx, member)
	})
	if err != nil {
		return nil, err
	}

	return member, nil
}

func (s *memberService) GetMember(ctx context.Context, id int64) (*domain.Member, error) {
	member, err := s.memberRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFound(err, fmt.Sprintf("member with id %d", id))
	}
	return member, nil
}

func (s *memberService) ListMembers(ctx context.Context, username string) ([]*domain.Member, error) {
	if username != "" {
		return s.memberRepo.FindByUsername(ctx, username)
	}
	return s.memberRepo.FindAllSorted(ctx)
}

// BulkRename переименовывает всех участников младше ageBelow.
func (s *memberService) BulkRename(ctx context.Context, ageBelow int, username string) (int64, error) {
	if strings.TrimSpace(username) == "" {
		return 0, domain.NewBadRequestError("username is required")
	}

	affected, err := s.bulkRepo.UpdateUsername(ctx, search.Members.Age.Lt(int64(ageBelow)), username)
	if err != nil {
		return 0, err
	}

	s.log.Infow("bulk rename", "age_below", ageBelow, "affected", affected)

	return affected, nil
}

func (s *memberService) BulkAddAge(ctx context.Context, delta int) (int64, error) {
	affected, err := s.bulkRepo.AddAge(ctx, delta)
	if err != nil {
		return 0, err
	}

	s.log.Infow("bulk add age", "delta", delta, "affected", affected)

	return affected, nil
}

func (s *memberService) BulkMultiplyAge(ctx context.Context, factor int) (int64, error) {
	if factor < 0 {
		return 0, domain.NewBadRequestError("factor must not be negative")
	}

	affected, err := s.bulkRepo.MultiplyAge(ctx, factor)
	if err != nil {
		return 0, err
	}

	s.log.Infow("bulk multiply age", "factor", factor, "affected", affected)

	return affected, nil
}

// BulkDelete удаляет всех участников старше ageAbove.
func (s *memberService) BulkDelete(ctx context.Context, ageAbove int) (int64, error) {
	affected, err := s.bulkRepo.Delete(ctx, search.Members.Age.Gt(int64(ageAbove)))
	if err != nil {
		return 0, err
	}

	s.log.Infow("bulk delete", "age_above", ageAbove, "affected", affected)

	return affected, nil
}

// findTeam возвращает nil для пустого имени: участник остается без команды.
func (s *memberService) findTeam(ctx context.Context, name string) (*domain.Team, error) {
	if name == "" {
		return nil, nil
	}

	team, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		return nil, notFound(err, "team with name "+name)
	}
	return team, nil
}
