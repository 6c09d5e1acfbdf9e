package domain

import (
	"time"
)

type Actor struct {
	ID          int64     `json:"id"`
	CommunityID int64     `json:"community_id"`
	FullName    string    `json:"full_name"`
	Role        ActorRole `json:"role"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ActorRole string

const (
	ActorRoleAdministrator    ActorRole = "administrator"
	ActorRoleMember           ActorRole = "member"
	ActorRoleProviderOperator ActorRole = "provider_operator"
)

func (r ActorRole) IsValid() bool {
	switch r {
	case ActorRoleAdministrator, ActorRoleMember, ActorRoleProviderOperator:
		return true
	}
	return false
}
