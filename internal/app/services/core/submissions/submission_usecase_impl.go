package submissions

import (
	"context"
	"strings"
	"time"

	"forms-service/internal/app/config"
	"forms-service/internal/app/contracts"
	"forms-service/internal/pkg/constvars"
	"forms-service/internal/pkg/dto/requests"
	"forms-service/internal/pkg/exceptions"
	"forms-service/internal/pkg/templates"
	"forms-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type submissionUsecase struct {
	SubmissionRepository contracts.SubmissionRepository
	CaptchaClient        contracts.CaptchaClient
	SMTPService          contracts.SMTPService
	InternalConfig       *config.InternalConfig
	Log                  *zap.Logger
	now                  func() time.Time
}

func NewSubmissionUsecase(
	submissionRepository contracts.SubmissionRepository,
	captchaClient contracts.CaptchaClient,
	smtpService contracts.SMTPService,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
) contracts.SubmissionUsecase {
	return &submissionUsecase{
		SubmissionRepository: submissionRepository,
		CaptchaClient:        captchaClient,
		SMTPService:          smtpService,
		InternalConfig:       internalConfig,
		Log:                  logger,
		now:                  time.Now,
	}
}

func (uc *submissionUsecase) SubmitForm(ctx context.Context, formKind string, fields map[string]string) (*contracts.SubmissionResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("submissionUsecase.SubmitForm called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFormKindKey, formKind),
	)

	token, ok := fields[constvars.FieldToken]
	if !ok || !uc.isWriteToken(token) {
		return nil, exceptions.ErrFormTokenInvalid(nil)
	}

	collection, ok := constvars.CollectionForFormKind[formKind]
	if !ok {
		return nil, exceptions.ErrFormKindNotFound(nil)
	}

	record := uc.buildRecord(fields)
	err := uc.SubmissionRepository.Insert(ctx, collection, record)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("submissionUsecase.SubmitForm succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingCollectionKey, collection),
	)
	return &contracts.SubmissionResult{OriginURL: fields[constvars.FieldOriginURL]}, nil
}

func (uc *submissionUsecase) SubmitSuggestion(ctx context.Context, fields map[string]string) (*contracts.SubmissionResult, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("submissionUsecase.SubmitSuggestion called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := requests.Suggestion{
		CaptchaResponse: fields[constvars.FieldCaptchaResponse],
		Origin:          fields[constvars.FieldOrigin],
	}
	err := utils.ValidateStruct(request)
	if err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	verified, err := uc.CaptchaClient.Verify(ctx, request.CaptchaResponse)
	if err != nil {
		return nil, err
	}
	if !verified {
		return nil, exceptions.ErrCaptchaRejected(nil)
	}

	templateID, recipient, subject, err := uc.notificationForOrigin(request.Origin)
	if err != nil {
		return nil, err
	}

	types := deriveTypes(fields)
	record := uc.buildRecord(fields)
	record[constvars.FieldTypes] = types

	err = uc.SubmissionRepository.Insert(ctx, constvars.MongoCollectionSuggestions, record)
	if err != nil {
		return nil, err
	}

	substitutions := make(map[string]string, len(fields)+1)
	for key, value := range fields {
		substitutions[key] = value
	}
	substitutions[constvars.FieldTypes] = types

	body, err := templates.RenderMail(templateID, substitutions)
	if err != nil {
		return nil, err
	}
	err = uc.SMTPService.SendEmail(recipient, subject, body)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("submissionUsecase.SubmitSuggestion succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.FieldOrigin, request.Origin),
	)
	return &contracts.SubmissionResult{OriginURL: fields[constvars.FieldOriginURL]}, nil
}

func (uc *submissionUsecase) ListEntries(ctx context.Context, formKind, token string) ([]map[string]interface{}, error) {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	uc.Log.Info("submissionUsecase.ListEntries called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingFormKindKey, formKind),
	)

	if token == "" || token != uc.InternalConfig.Forms.ReadToken {
		return nil, exceptions.ErrReadTokenInvalid(nil)
	}

	collection, ok := constvars.CollectionForFormKind[formKind]
	if !ok {
		return nil, exceptions.ErrFormKindNotFound(nil)
	}

	records, err := uc.SubmissionRepository.FindAll(ctx, collection)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("submissionUsecase.ListEntries succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int("record_count", len(records)),
	)
	return records, nil
}

func (uc *submissionUsecase) isWriteToken(token string) bool {
	for _, writeToken := range uc.InternalConfig.Forms.WriteTokens {
		if token == writeToken {
			return true
		}
	}
	return false
}

// buildRecord copies the submitted fields verbatim and stamps the receipt
// time. A client-supplied timestamp field is always overwritten.
func (uc *submissionUsecase) buildRecord(fields map[string]string) map[string]interface{} {
	record := make(map[string]interface{}, len(fields)+1)
	for key, value := range fields {
		record[key] = value
	}
	record[constvars.FieldTimestamp] = uc.now().UTC()
	return record
}

// notificationForOrigin is the enumerated dispatch from origin to template,
// recipient and subject. Unknown origins are rejected, not defaulted.
func (uc *submissionUsecase) notificationForOrigin(origin string) (string, string, string, error) {
	switch origin {
	case constvars.SuggestionOriginPortal:
		return templates.MailSuggestionPortal, uc.InternalConfig.Forms.PortalRecipient, constvars.EmailSuggestionPortalSubject, nil
	case constvars.SuggestionOriginRegistry:
		return templates.MailSuggestionRegistry, uc.InternalConfig.Forms.RegistryRecipient, constvars.EmailSuggestionRegistrySubject, nil
	default:
		return "", "", "", exceptions.ErrSuggestionOriginUnknown(nil)
	}
}

// deriveTypes joins the known suggestion tags set to "on", in the fixed
// enumeration order rather than input order.
func deriveTypes(fields map[string]string) string {
	tags := make([]string, 0, len(constvars.SuggestionTypeTags))
	for _, tag := range constvars.SuggestionTypeTags {
		if fields[tag] == constvars.SuggestionTypeCheckedValue {
			tags = append(tags, tag)
		}
	}
	return strings.Join(tags, ", ")
}
