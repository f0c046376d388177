package email

import (
	"classportal/internal/core/domain/user"
	"context"
	"encoding/json"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

type OTPSender struct {
	ses *ses.Client
	// This address must be verified with Amazon SES.
	sender           string
	otpEmailTemplate string
}

func NewOTPSender(
	awsConfig aws.Config,
	sender string,
	otpEmailTemplate string,
) *OTPSender {
	return &OTPSender{
		ses:              ses.NewFromConfig(awsConfig),
		sender:           sender,
		otpEmailTemplate: otpEmailTemplate,
	}
}

func (s *OTPSender) SendOTP(ctx context.Context, u user.User, code user.OTPCode) user.Delivery {
	templateParamsBytes, err := json.Marshal(
		otpTemplateParams{
			Name: u.Name,
			Code: string(code),
		},
	)
	if err != nil {
		return user.Delivery{Delivered: false, Diagnostic: err.Error()}
	}
	templateParams := string(templateParamsBytes)

	email := string(u.Email)
	_, err = s.ses.SendTemplatedEmail(
		ctx,
		&ses.SendTemplatedEmailInput{
			Source: &s.sender,
			Destination: &types.Destination{
				CcAddresses: []string{},
				ToAddresses: []string{email},
			},
			Template:     &s.otpEmailTemplate,
			TemplateData: &templateParams,
		},
	)
	if err != nil {
		return user.Delivery{Delivered: false, Diagnostic: err.Error()}
	}
	return user.Delivery{Delivered: true}
}

type otpTemplateParams struct {
	Name string `json:"name"`
	Code string `json:"code"`
}
