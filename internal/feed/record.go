package feed

import (
	"strings"

	"finflow/dealrecon/internal/dateutils"
	"finflow/dealrecon/internal/feederror"
	"finflow/dealrecon/internal/models"
)

// operationRecord is the wire shape shared by all feed formats. Dates and
// amounts stay strings until conversion so that one code path owns the
// degrade-to-zero amount semantics and the multi-format date parsing.
type operationRecord struct {
	ID                       string `csv:"Id" yaml:"id" json:"id"`
	Type                     string `csv:"Type" yaml:"type" json:"type"`
	Date                     string `csv:"Date" yaml:"date" json:"date"`
	Amount                   string `csv:"Amount" yaml:"amount" json:"amount"`
	ProjectID                string `csv:"ProjectId" yaml:"projectId" json:"projectId"`
	CategoryID               string `csv:"CategoryId" yaml:"categoryId" json:"categoryId"`
	ContractorID             string `csv:"ContractorId" yaml:"contractorId,omitempty" json:"contractorId,omitempty"`
	CounterpartyIndividualID string `csv:"CounterpartyIndividualId" yaml:"counterpartyIndividualId,omitempty" json:"counterpartyIndividualId,omitempty"`
	TotalDealAmount          string `csv:"TotalDealAmount" yaml:"totalDealAmount,omitempty" json:"totalDealAmount,omitempty"`
	IsPrepayment             bool   `csv:"IsPrepayment" yaml:"isPrepayment,omitempty" json:"isPrepayment,omitempty"`
	IsDealTranche            bool   `csv:"IsDealTranche" yaml:"isDealTranche,omitempty" json:"isDealTranche,omitempty"`
	IsClosed                 bool   `csv:"IsClosed" yaml:"isClosed,omitempty" json:"isClosed,omitempty"`
}

// toOperation converts a wire record into the engine model. Amount fields
// degrade to zero when unparseable; a bad date is a hard error because day
// ordering drives the whole reconciliation.
func (rec *operationRecord) toOperation(format string) (models.Operation, error) {
	date, err := dateutils.ParseDate(rec.Date)
	if err != nil {
		return models.Operation{}, &feederror.ParseError{
			Format: format,
			Field:  "date",
			Value:  rec.Date,
			Err:    err,
		}
	}

	return models.Operation{
		ID:                       strings.TrimSpace(rec.ID),
		Type:                     models.OperationType(strings.ToLower(strings.TrimSpace(rec.Type))),
		Date:                     date,
		Amount:                   models.ParseAmount(rec.Amount),
		ProjectID:                strings.TrimSpace(rec.ProjectID),
		CategoryID:               strings.TrimSpace(rec.CategoryID),
		ContractorID:             strings.TrimSpace(rec.ContractorID),
		CounterpartyIndividualID: strings.TrimSpace(rec.CounterpartyIndividualID),
		TotalDealAmount:          models.ParseAmount(rec.TotalDealAmount),
		IsPrepayment:             rec.IsPrepayment,
		IsDealTranche:            rec.IsDealTranche,
		IsClosed:                 rec.IsClosed,
	}, nil
}

func convertRecords(records []*operationRecord, format string) ([]models.Operation, error) {
	ops := make([]models.Operation, 0, len(records))
	for _, rec := range records {
		if rec == nil || rec.ID == "" {
			// Blank padding rows are common in exported files; skip quietly.
			continue
		}
		op, err := rec.toOperation(format)
		if err != nil {
			return nil, err
		}
		ops = append(ops, op)
	}
	return ops, nil
}
