// Package reports holds the wire contract shared by the bot and the reporter:
// the Kafka report request and the gRPC report acceptor. Payloads are
// structpb.Struct messages so both sides agree without generated code.
package reports

import (
	"github.com/pkg/errors"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

const (
	fieldUserID         = "user_id"
	fieldCurrency       = "currency"
	fieldTotalItems     = "total_items"
	fieldPurchasedItems = "purchased_items"
	fieldTotalCost      = "total_cost"
	fieldPurchasedCost  = "purchased_cost"
	fieldRemainingCost  = "remaining_cost"
	fieldCompletion     = "completion_percent"
	fieldCategories     = "categories"
	fieldCategory       = "category"
	fieldRemaining      = "remaining"
	fieldSuccess        = "success"
	fieldError          = "error"
)

// ReportRequest is published to Kafka by the bot on /report.
type ReportRequest struct {
	UserID   int64
	Currency string
}

type CategoryLine struct {
	Category  string
	Remaining string
}

// Report carries already rendered money strings.
type Report struct {
	UserID            int64
	Currency          string
	TotalItems        int64
	PurchasedItems    int64
	TotalCost         string
	PurchasedCost     string
	RemainingCost     string
	CompletionPercent int64
	Categories        []CategoryLine
	Success           bool
	Error             string
}

// OperationStatus is the acceptor's reply.
type OperationStatus struct {
	Success bool
	Error   string
}

func MarshalRequest(req ReportRequest) ([]byte, error) {
	s, err := structpb.NewStruct(map[string]interface{}{
		fieldUserID:   req.UserID,
		fieldCurrency: req.Currency,
	})
	if err != nil {
		return nil, errors.Wrap(err, "marshal report request")
	}
	return proto.Marshal(s)
}

func UnmarshalRequest(data []byte) (ReportRequest, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return ReportRequest{}, errors.Wrap(err, "unmarshal report request")
	}
	userID := s.GetFields()[fieldUserID]
	if userID == nil {
		return ReportRequest{}, errors.New("unmarshal report request: user_id is missing")
	}
	return ReportRequest{
		UserID:   int64(userID.GetNumberValue()),
		Currency: s.GetFields()[fieldCurrency].GetStringValue(),
	}, nil
}

func (r *Report) ToStruct() (*structpb.Struct, error) {
	categories := make([]interface{}, 0, len(r.Categories))
	for _, line := range r.Categories {
		categories = append(categories, map[string]interface{}{
			fieldCategory:  line.Category,
			fieldRemaining: line.Remaining,
		})
	}
	s, err := structpb.NewStruct(map[string]interface{}{
		fieldUserID:         r.UserID,
		fieldCurrency:       r.Currency,
		fieldTotalItems:     r.TotalItems,
		fieldPurchasedItems: r.PurchasedItems,
		fieldTotalCost:      r.TotalCost,
		fieldPurchasedCost:  r.PurchasedCost,
		fieldRemainingCost:  r.RemainingCost,
		fieldCompletion:     r.CompletionPercent,
		fieldCategories:     categories,
		fieldSuccess:        r.Success,
		fieldError:          r.Error,
	})
	return s, errors.Wrap(err, "encode report")
}

func ReportFromStruct(s *structpb.Struct) *Report {
	f := s.GetFields()
	r := &Report{
		UserID:            int64(f[fieldUserID].GetNumberValue()),
		Currency:          f[fieldCurrency].GetStringValue(),
		TotalItems:        int64(f[fieldTotalItems].GetNumberValue()),
		PurchasedItems:    int64(f[fieldPurchasedItems].GetNumberValue()),
		TotalCost:         f[fieldTotalCost].GetStringValue(),
		PurchasedCost:     f[fieldPurchasedCost].GetStringValue(),
		RemainingCost:     f[fieldRemainingCost].GetStringValue(),
		CompletionPercent: int64(f[fieldCompletion].GetNumberValue()),
		Success:           f[fieldSuccess].GetBoolValue(),
		Error:             f[fieldError].GetStringValue(),
	}
	for _, v := range f[fieldCategories].GetListValue().GetValues() {
		line := v.GetStructValue().GetFields()
		r.Categories = append(r.Categories, CategoryLine{
			Category:  line[fieldCategory].GetStringValue(),
			Remaining: line[fieldRemaining].GetStringValue(),
		})
	}
	return r
}

func (o OperationStatus) ToStruct() *structpb.Struct {
	return &structpb.Struct{Fields: map[string]*structpb.Value{
		fieldSuccess: structpb.NewBoolValue(o.Success),
		fieldError:   structpb.NewStringValue(o.Error),
	}}
}

func StatusFromStruct(s *structpb.Struct) OperationStatus {
	return OperationStatus{
		Success: s.GetFields()[fieldSuccess].GetBoolValue(),
		Error:   s.GetFields()[fieldError].GetStringValue(),
	}
}
