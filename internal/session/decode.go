package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/resume-builder/internal/types"
)

// Wire names of the action types accepted by DecodeAction
const (
	ActionUpdatePersonal = "update_personal"
	ActionAddItem        = "add_item"
	ActionUpdateItem     = "update_item"
	ActionRemoveItem     = "remove_item"
	ActionAddCategory    = "add_category"
	ActionRemoveCategory = "remove_category"
	ActionAddTech        = "add_tech"
	ActionRemoveTech     = "remove_tech"
	ActionMoveSection    = "move_section"
	ActionToggleCollapse = "toggle_collapse"
)

// ActionRequest is the JSON form of an action
type ActionRequest struct {
	Type      string            `json:"type" validate:"required,oneof=update_personal add_item update_item remove_item add_category remove_category add_tech remove_tech move_section toggle_collapse"`
	Section   types.SectionType `json:"section,omitempty" validate:"omitempty,section_type"`
	ID        string            `json:"id,omitempty"`
	Fields    json.RawMessage   `json:"fields,omitempty"`
	Category  string            `json:"category,omitempty"`
	Tech      string            `json:"tech,omitempty"`
	From      *int              `json:"from,omitempty" validate:"omitempty,min=0"`
	To        *int              `json:"to,omitempty" validate:"omitempty,min=0"`
	SectionID string            `json:"sectionId,omitempty"`
}

var requestValidator = types.NewValidator()

// DecodeAction parses and validates a JSON action request
func DecodeAction(data []byte) (Action, error) {
	var req ActionRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, &InvalidActionError{Message: "malformed action", Cause: err}
	}
	return req.Action()
}

// Action validates the request and converts it to the matching Action
func (req *ActionRequest) Action() (Action, error) {
	if err := requestValidator.Struct(req); err != nil {
		return nil, &InvalidActionError{Message: describeValidation(err), Cause: err}
	}

	switch req.Type {
	case ActionUpdatePersonal:
		if len(req.Fields) == 0 {
			return nil, invalid("%s requires fields", req.Type)
		}
		return UpdatePersonal{Patch: req.Fields}, nil
	case ActionAddItem:
		if req.Section == "" {
			return nil, invalid("%s requires section", req.Type)
		}
		return AddItem{Section: req.Section, ID: req.ID, Category: req.Category}, nil
	case ActionUpdateItem:
		if req.Section == "" || req.ID == "" || len(req.Fields) == 0 {
			return nil, invalid("%s requires section, id and fields", req.Type)
		}
		return UpdateItem{Section: req.Section, ID: req.ID, Patch: req.Fields}, nil
	case ActionRemoveItem:
		if req.Section == "" || req.ID == "" {
			return nil, invalid("%s requires section and id", req.Type)
		}
		return RemoveItem{Section: req.Section, ID: req.ID}, nil
	case ActionAddCategory:
		return AddCategory{Name: req.Category}, nil
	case ActionRemoveCategory:
		if req.Category == "" {
			return nil, invalid("%s requires category", req.Type)
		}
		return RemoveCategory{Name: req.Category}, nil
	case ActionAddTech:
		if req.ID == "" {
			return nil, invalid("%s requires id", req.Type)
		}
		return AddTech{ProjectID: req.ID, Tech: req.Tech}, nil
	case ActionRemoveTech:
		if req.ID == "" {
			return nil, invalid("%s requires id", req.Type)
		}
		return RemoveTech{ProjectID: req.ID, Tech: req.Tech}, nil
	case ActionMoveSection:
		if req.From == nil || req.To == nil {
			return nil, invalid("%s requires from and to", req.Type)
		}
		return MoveSection{From: *req.From, To: *req.To}, nil
	case ActionToggleCollapse:
		if req.SectionID == "" {
			return nil, invalid("%s requires sectionId", req.Type)
		}
		return ToggleCollapse{SectionID: req.SectionID}, nil
	}
	return nil, invalid("unknown action type %q", req.Type)
}

func describeValidation(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err.Error()
	}
	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %s", strings.ToLower(fe.Field()), fe.Tag()))
	}
	return strings.Join(msgs, "; ")
}
