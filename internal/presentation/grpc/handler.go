package grpc

import (
	"context"
	"errors"
	"log/slog"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/meridianbank/origination/internal/application/dto"
	"github.com/meridianbank/origination/internal/application/usecase"
	"github.com/meridianbank/origination/internal/domain/valueobject"
	"github.com/meridianbank/origination/pkg/auth"
)

// Compile-time assertion that OriginationHandler implements OriginationServiceServer.
var _ OriginationServiceServer = (*OriginationHandler)(nil)

// OriginationHandler implements the gRPC OriginationService server.
type OriginationHandler struct {
	UnimplementedOriginationServiceServer

	createApp     *usecase.CreateApplicationUseCase
	updateDraft   *usecase.UpdateDraftUseCase
	submitApp     *usecase.SubmitApplicationUseCase
	advanceReview *usecase.AdvanceReviewUseCase
	requestInfo   *usecase.RequestInfoUseCase
	resolveInfo   *usecase.ResolveInfoUseCase
	assessApp     *usecase.AssessApplicationUseCase
	approveApp    *usecase.ApproveApplicationUseCase
	rejectApp     *usecase.RejectApplicationUseCase
	disburseApp   *usecase.DisburseApplicationUseCase
	cancelApp     *usecase.CancelApplicationUseCase
	getApp        *usecase.GetApplicationUseCase
	listApps      *usecase.ListApplicationsUseCase
	schedule      *usecase.ComputeScheduleUseCase

	logger *slog.Logger
}

// NewOriginationHandler creates a new handler with all use-case dependencies.
func NewOriginationHandler(
	createApp *usecase.CreateApplicationUseCase,
	updateDraft *usecase.UpdateDraftUseCase,
	submitApp *usecase.SubmitApplicationUseCase,
	advanceReview *usecase.AdvanceReviewUseCase,
	requestInfo *usecase.RequestInfoUseCase,
	resolveInfo *usecase.ResolveInfoUseCase,
	assessApp *usecase.AssessApplicationUseCase,
	approveApp *usecase.ApproveApplicationUseCase,
	rejectApp *usecase.RejectApplicationUseCase,
	disburseApp *usecase.DisburseApplicationUseCase,
	cancelApp *usecase.CancelApplicationUseCase,
	getApp *usecase.GetApplicationUseCase,
	listApps *usecase.ListApplicationsUseCase,
	schedule *usecase.ComputeScheduleUseCase,
	logger *slog.Logger,
) *OriginationHandler {
	return &OriginationHandler{
		createApp:     createApp,
		updateDraft:   updateDraft,
		submitApp:     submitApp,
		advanceReview: advanceReview,
		requestInfo:   requestInfo,
		resolveInfo:   resolveInfo,
		assessApp:     assessApp,
		approveApp:    approveApp,
		rejectApp:     rejectApp,
		disburseApp:   disburseApp,
		cancelApp:     cancelApp,
		getApp:        getApp,
		listApps:      listApps,
		schedule:      schedule,
		logger:        logger,
	}
}

// requireRole checks that the caller has at least one of the given roles.
func requireRole(ctx context.Context, roles ...string) (*auth.Claims, error) {
	claims, ok := auth.ClaimsFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "authentication required")
	}
	for _, role := range roles {
		if claims.HasRole(role) {
			return claims, nil
		}
	}
	return nil, status.Error(codes.PermissionDenied, "insufficient permissions")
}

// toStatus maps domain errors onto gRPC status codes.
func (h *OriginationHandler) toStatus(err error) error {
	switch {
	case valueobject.IsValidation(err):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, valueobject.ErrApplicationNotFound):
		return status.Error(codes.NotFound, "application not found")
	case errors.Is(err, valueobject.ErrInvalidStatusTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	case errors.Is(err, valueobject.ErrVersionConflict):
		return status.Error(codes.Aborted, err.Error())
	default:
		h.logger.Error("handler error", "error", err)
		return status.Error(codes.Internal, "internal error")
	}
}

func parseAmount(field, raw string) (decimal.Decimal, error) {
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return v, nil
}

func parseOptionalAmount(field, raw string) (decimal.NullDecimal, error) {
	if raw == "" {
		return decimal.NullDecimal{}, nil
	}
	v, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.NullDecimal{}, status.Errorf(codes.InvalidArgument, "invalid %s: %v", field, err)
	}
	return decimal.NewNullDecimal(v), nil
}

func (h *OriginationHandler) CreateApplication(ctx context.Context, req *CreateApplicationRequestMsg) (*ApplicationResponseMsg, error) {
	if _, err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer, auth.RoleCustomer); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	amount, err := parseAmount("requested_amount", req.RequestedAmount)
	if err != nil {
		return nil, err
	}
	income, err := parseOptionalAmount("declared_income", req.DeclaredIncome)
	if err != nil {
		return nil, err
	}
	debt, err := parseOptionalAmount("existing_debt", req.ExistingDebt)
	if err != nil {
		return nil, err
	}
	collateral, err := parseOptionalAmount("collateral_value", req.CollateralValue)
	if err != nil {
		return nil, err
	}

	result, err := h.createApp.Execute(ctx, dto.CreateApplicationRequest{
		CustomerRef:     req.CustomerRef,
		Category:        req.Category,
		RequestedAmount: amount,
		TermMonths:      int(req.TermMonths),
		Purpose:         req.Purpose,
		DeclaredIncome:  income,
		ExistingDebt:    debt,
		CollateralValue: collateral,
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &ApplicationResponseMsg{Application: toApplicationMsg(result)}, nil
}

func (h *OriginationHandler) UpdateDraft(ctx context.Context, req *UpdateDraftRequestMsg) (*ApplicationResponseMsg, error) {
	if _, err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer, auth.RoleCustomer); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	amount, err := parseAmount("requested_amount", req.RequestedAmount)
	if err != nil {
		return nil, err
	}
	income, err := parseOptionalAmount("declared_income", req.DeclaredIncome)
	if err != nil {
		return nil, err
	}
	debt, err := parseOptionalAmount("existing_debt", req.ExistingDebt)
	if err != nil {
		return nil, err
	}
	collateral, err := parseOptionalAmount("collateral_value", req.CollateralValue)
	if err != nil {
		return nil, err
	}

	result, err := h.updateDraft.Execute(ctx, dto.UpdateDraftRequest{
		ApplicationID:   req.ApplicationID,
		RequestedAmount: amount,
		TermMonths:      int(req.TermMonths),
		Purpose:         req.Purpose,
		DeclaredIncome:  income,
		ExistingDebt:    debt,
		CollateralValue: collateral,
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &ApplicationResponseMsg{Application: toApplicationMsg(result)}, nil
}

func (h *OriginationHandler) SubmitApplication(ctx context.Context, req *SubmitApplicationRequestMsg) (*ApplicationResponseMsg, error) {
	if _, err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer, auth.RoleCustomer); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.submitApp.Execute(ctx, dto.SubmitApplicationRequest{ApplicationID: req.ApplicationID})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &ApplicationResponseMsg{Application: toApplicationMsg(result)}, nil
}

func (h *OriginationHandler) AdvanceReview(ctx context.Context, req *AdvanceReviewRequestMsg) (*ApplicationResponseMsg, error) {
	if _, err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer, auth.RoleUnderwriter); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.advanceReview.Execute(ctx, dto.AdvanceReviewRequest{ApplicationID: req.ApplicationID})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &ApplicationResponseMsg{Application: toApplicationMsg(result)}, nil
}

func (h *OriginationHandler) RequestInfo(ctx context.Context, req *RequestInfoRequestMsg) (*ApplicationResponseMsg, error) {
	if _, err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer, auth.RoleUnderwriter); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.requestInfo.Execute(ctx, dto.RequestInfoRequest{
		ApplicationID: req.ApplicationID,
		Reason:        req.Reason,
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &ApplicationResponseMsg{Application: toApplicationMsg(result)}, nil
}

func (h *OriginationHandler) ResolveInfo(ctx context.Context, req *ResolveInfoRequestMsg) (*ApplicationResponseMsg, error) {
	if _, err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer, auth.RoleUnderwriter); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.resolveInfo.Execute(ctx, dto.ResolveInfoRequest{ApplicationID: req.ApplicationID})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &ApplicationResponseMsg{Application: toApplicationMsg(result)}, nil
}

func (h *OriginationHandler) AssessApplication(ctx context.Context, req *AssessApplicationRequestMsg) (*ApplicationResponseMsg, error) {
	if _, err := requireRole(ctx, auth.RoleAdmin, auth.RoleUnderwriter); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.assessApp.Execute(ctx, dto.AssessApplicationRequest{ApplicationID: req.ApplicationID})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &ApplicationResponseMsg{Application: toApplicationMsg(result)}, nil
}

func (h *OriginationHandler) ApproveApplication(ctx context.Context, req *ApproveApplicationRequestMsg) (*ApplicationResponseMsg, error) {
	claims, err := requireRole(ctx, auth.RoleAdmin, auth.RoleManager)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	amount, err := parseAmount("approved_amount", req.ApprovedAmount)
	if err != nil {
		return nil, err
	}
	rate, err := parseAmount("approved_rate", req.ApprovedRate)
	if err != nil {
		return nil, err
	}

	result, err := h.approveApp.Execute(ctx, dto.ApproveApplicationRequest{
		ApplicationID:      req.ApplicationID,
		ApprovedAmount:     amount,
		ApprovedTermMonths: int(req.ApprovedTermMonths),
		ApprovedRate:       rate,
		ApprovedBy:         claims.UserID,
		Reason:             req.Reason,
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &ApplicationResponseMsg{Application: toApplicationMsg(result)}, nil
}

func (h *OriginationHandler) RejectApplication(ctx context.Context, req *RejectApplicationRequestMsg) (*ApplicationResponseMsg, error) {
	claims, err := requireRole(ctx, auth.RoleAdmin, auth.RoleManager, auth.RoleUnderwriter)
	if err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.rejectApp.Execute(ctx, dto.RejectApplicationRequest{
		ApplicationID: req.ApplicationID,
		Reason:        req.Reason,
		RejectedBy:    claims.UserID,
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &ApplicationResponseMsg{Application: toApplicationMsg(result)}, nil
}

func (h *OriginationHandler) DisburseApplication(ctx context.Context, req *DisburseApplicationRequestMsg) (*ApplicationResponseMsg, error) {
	if _, err := requireRole(ctx, auth.RoleAdmin, auth.RoleOperations); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	amount, err := parseAmount("disbursed_amount", req.DisbursedAmount)
	if err != nil {
		return nil, err
	}

	result, err := h.disburseApp.Execute(ctx, dto.DisburseApplicationRequest{
		ApplicationID:   req.ApplicationID,
		DisbursedAmount: amount,
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &ApplicationResponseMsg{Application: toApplicationMsg(result)}, nil
}

func (h *OriginationHandler) CancelApplication(ctx context.Context, req *CancelApplicationRequestMsg) (*ApplicationResponseMsg, error) {
	if _, err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer, auth.RoleCustomer); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.cancelApp.Execute(ctx, dto.CancelApplicationRequest{ApplicationID: req.ApplicationID})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &ApplicationResponseMsg{Application: toApplicationMsg(result)}, nil
}

func (h *OriginationHandler) GetApplication(ctx context.Context, req *GetApplicationRequestMsg) (*ApplicationResponseMsg, error) {
	if _, err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer, auth.RoleUnderwriter, auth.RoleManager, auth.RoleOperations, auth.RoleCustomer); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.getApp.Execute(ctx, dto.GetApplicationRequest{
		ApplicationID:     req.ApplicationID,
		ApplicationNumber: req.ApplicationNumber,
	})
	if err != nil {
		return nil, h.toStatus(err)
	}
	return &ApplicationResponseMsg{Application: toApplicationMsg(result)}, nil
}

func (h *OriginationHandler) ListApplications(ctx context.Context, req *ListApplicationsRequestMsg) (*ListApplicationsResponseMsg, error) {
	if _, err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer, auth.RoleUnderwriter, auth.RoleManager, auth.RoleOperations, auth.RoleCustomer); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	result, err := h.listApps.Execute(ctx, req.CustomerRef)
	if err != nil {
		return nil, h.toStatus(err)
	}

	var applications []*ApplicationMsg
	for _, r := range result {
		applications = append(applications, toApplicationMsg(r))
	}
	return &ListApplicationsResponseMsg{
		Applications: applications,
		TotalCount:   int32(len(applications)), //nolint:gosec // bounded
	}, nil
}

func (h *OriginationHandler) ComputeSchedule(ctx context.Context, req *ComputeScheduleRequestMsg) (*ComputeScheduleResponseMsg, error) {
	if _, err := requireRole(ctx, auth.RoleAdmin, auth.RoleLoanOfficer, auth.RoleUnderwriter, auth.RoleManager, auth.RoleCustomer); err != nil {
		return nil, err
	}
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "request is required")
	}

	principal, err := parseAmount("principal", req.Principal)
	if err != nil {
		return nil, err
	}
	rate, err := parseAmount("annual_rate_percent", req.AnnualRatePercent)
	if err != nil {
		return nil, err
	}

	result, err := h.schedule.Execute(ctx, dto.ScheduleRequest{
		Principal:         principal,
		AnnualRatePercent: rate,
		TermMonths:        int(req.TermMonths),
	})
	if err != nil {
		return nil, h.toStatus(err)
	}

	entries := make([]*ScheduleEntryMsg, 0, len(result.Entries))
	for _, e := range result.Entries {
		entries = append(entries, &ScheduleEntryMsg{
			Month:            int32(e.Month), //nolint:gosec // bounded
			Payment:          e.Payment.StringFixed(2),
			PrincipalPortion: e.PrincipalPortion.StringFixed(2),
			InterestPortion:  e.InterestPortion.StringFixed(2),
			RemainingBalance: e.RemainingBalance.StringFixed(2),
		})
	}
	return &ComputeScheduleResponseMsg{
		MonthlyPayment: result.MonthlyPayment.StringFixed(2),
		TotalPayment:   result.TotalPayment.StringFixed(2),
		TotalInterest:  result.TotalInterest.StringFixed(2),
		Entries:        entries,
	}, nil
}
