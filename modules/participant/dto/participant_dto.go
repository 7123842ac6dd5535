package dto

import (
	"time"

	"timegrid/modules/participant/entity"
)

type AddParticipantRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=100"`
	Email string `json:"email" validate:"omitempty,email"`
}

type ParticipantResponse struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type ParticipantListResponse struct {
	Participants []ParticipantResponse `json:"participants"`
	Total        int                   `json:"total"`
}

func ToParticipantResponse(p *entity.Participant) *ParticipantResponse {
	resp := &ParticipantResponse{
		ID:        p.ID.String(),
		EventID:   p.EventID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
	if p.Email != nil {
		resp.Email = *p.Email
	}
	return resp
}

func ToParticipantListResponse(list []entity.Participant) *ParticipantListResponse {
	resp := &ParticipantListResponse{
		Participants: make([]ParticipantResponse, 0, len(list)),
		Total:        len(list),
	}
	for i := range list {
		resp.Participants = append(resp.Participants, *ToParticipantResponse(&list[i]))
	}
	return resp
}
