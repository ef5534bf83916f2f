package request

import "fulfillment_engine/internal/usecase"

type AssignItemRequest struct {
	DepartmentID string              `json:"department_id"`
	TechnicianID string              `json:"technician_id"`
	Technicians  []TechnicianRequest `json:"technicians"`
}

// ToCommand accepts either a technicians list or a single technician_id,
// which is recorded with a zero commission percentage.
func (r AssignItemRequest) ToCommand() usecase.AssignCommand {
	techs := r.Technicians
	if len(techs) == 0 && r.TechnicianID != "" {
		techs = []TechnicianRequest{{TechnicianID: r.TechnicianID}}
	}
	return usecase.AssignCommand{
		DepartmentID: r.DepartmentID,
		Technicians:  ToTechnicians(techs),
	}
}

type CompleteItemsRequest struct {
	ItemIDs []string `json:"item_ids" binding:"required"`
	Note    string   `json:"note"`
}

type ReasonRequest struct {
	Reason string `json:"reason"`
}

type MoveItemRequest struct {
	TargetDepartmentID string `json:"target_department_id"`
	Reason             string `json:"reason"`
	DeadlineDays       int    `json:"deadline_days"`
}

func (r MoveItemRequest) ToCommand(itemID, createdBy string) usecase.MoveCommand {
	return usecase.MoveCommand{
		ItemID:             itemID,
		TargetDepartmentID: r.TargetDepartmentID,
		Reason:             r.Reason,
		DeadlineDays:       r.DeadlineDays,
		CreatedBy:          createdBy,
	}
}
