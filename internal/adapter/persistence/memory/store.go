// Package memory is a process-local store used for development and tests.
// Every write that spans several rows happens under one lock, which gives
// the same all-or-nothing behaviour as the transactional adapters.
package memory

import (
	"sync"

	"fulfillment_engine/internal/domain/entities"
)

type Store struct {
	mu sync.RWMutex

	orders      map[string]entities.Order
	items       map[string]entities.OrderItem
	orderItems  map[string][]string
	routing     map[string]entities.RoutingEvent
	itemEvents  map[string][]string
	extensions  map[string]entities.ExtensionRequest
	orderExts   map[string][]string
	invoices    map[string]entities.Invoice
	commissions map[string]entities.Commission
	workflows   map[string]entities.WorkflowDefinition
	workflowIDs []string
}

func NewStore() *Store {
	return &Store{
		orders:      make(map[string]entities.Order),
		items:       make(map[string]entities.OrderItem),
		orderItems:  make(map[string][]string),
		routing:     make(map[string]entities.RoutingEvent),
		itemEvents:  make(map[string][]string),
		extensions:  make(map[string]entities.ExtensionRequest),
		orderExts:   make(map[string][]string),
		invoices:    make(map[string]entities.Invoice),
		commissions: make(map[string]entities.Commission),
		workflows:   make(map[string]entities.WorkflowDefinition),
	}
}

func (s *Store) Orders() *OrderRepository { return &OrderRepository{s: s} }
func (s *Store) Items() *OrderItemRepository { return &OrderItemRepository{s: s} }
func (s *Store) Routing() *RoutingEventRepository { return &RoutingEventRepository{s: s} }
func (s *Store) Extensions() *ExtensionRequestRepository { return &ExtensionRequestRepository{s: s} }
func (s *Store) Invoices() *InvoiceRepository { return &InvoiceRepository{s: s} }
func (s *Store) Commissions() *CommissionRepository { return &CommissionRepository{s: s} }
func (s *Store) Workflows() *WorkflowRepository { return &WorkflowRepository{s: s} }

func cloneItem(it entities.OrderItem) entities.OrderItem {
	if it.AssignedTechnicians != nil {
		techs := make([]entities.TechnicianAssignment, len(it.AssignedTechnicians))
		copy(techs, it.AssignedTechnicians)
		it.AssignedTechnicians = techs
	}
	return it
}

func cloneWorkflow(wf entities.WorkflowDefinition) entities.WorkflowDefinition {
	steps := make([]entities.WorkflowStep, len(wf.Steps))
	copy(steps, wf.Steps)
	wf.Steps = steps
	return wf
}
