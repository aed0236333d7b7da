package usecases_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/entities"
	domainerrors "github.com/crowdwaveeu-gif/crowdwave-crm/internal/domain/errors"
	"github.com/crowdwaveeu-gif/crowdwave-crm/internal/usecases"
)

func TestCampaignUsecase_SendWelcome(t *testing.T) {
	mailer := new(MockMailer)
	uc := usecases.NewCampaignUsecase(new(MockCampaignRepository), mailer)

	mailer.On("SendWelcome", context.Background(), "new@mail.com", "Jon").Return(nil).Once()

	err := uc.SendWelcome(context.Background(), &entities.SendWelcomeInput{Email: "new@mail.com", Name: "Jon"})
	assert.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestCampaignUsecase_SendWelcome_SMTPFailure(t *testing.T) {
	mailer := new(MockMailer)
	uc := usecases.NewCampaignUsecase(new(MockCampaignRepository), mailer)

	mailer.On("SendWelcome", context.Background(), "new@mail.com", "Jon").
		Return(errors.New("smtp: timeout")).Once()

	err := uc.SendWelcome(context.Background(), &entities.SendWelcomeInput{Email: "new@mail.com", Name: "Jon"})
	var appErr *domainerrors.AppError
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, 502, appErr.Status)
}

func TestCampaignUsecase_SendDeliveryUpdate(t *testing.T) {
	mailer := new(MockMailer)
	uc := usecases.NewCampaignUsecase(new(MockCampaignRepository), mailer)

	mailer.On("SendDeliveryUpdate", context.Background(), "sender@mail.com", "pkg-1", "in_transit", "on the way").Return(nil).Once()

	err := uc.SendDeliveryUpdate(context.Background(), &entities.SendDeliveryUpdateInput{
		Email:     "sender@mail.com",
		PackageID: "pkg-1",
		Status:    "in_transit",
		Message:   "on the way",
	})
	assert.NoError(t, err)
	mailer.AssertExpectations(t)
}

func TestCampaignUsecase_SendPromotional_CountsPartialFailures(t *testing.T) {
	campaignRepo := new(MockCampaignRepository)
	mailer := new(MockMailer)
	uc := usecases.NewCampaignUsecase(campaignRepo, mailer)

	campaignRepo.On("Create", context.Background(), mock.Anything).Return(nil).Once()
	campaignRepo.On("Update", context.Background(), mock.Anything).Return(nil).Once()

	mailer.On("SendPromotional", context.Background(), "a@mail.com", "Sale", "body").Return(nil).Once()
	mailer.On("SendPromotional", context.Background(), "b@mail.com", "Sale", "body").
		Return(errors.New("smtp: mailbox full")).Once()
	mailer.On("SendPromotional", context.Background(), "c@mail.com", "Sale", "body").Return(nil).Once()

	campaign, err := uc.SendPromotional(context.Background(), "ops@crowdwave.eu", &entities.SendPromotionalInput{
		Subject:    "Sale",
		Body:       "body",
		Recipients: []string{"a@mail.com", "b@mail.com", "c@mail.com"},
	})
	assert.NoError(t, err)
	assert.Equal(t, 3, campaign.RecipientCount)
	assert.Equal(t, 2, campaign.SentCount)
	assert.Equal(t, 1, campaign.FailedCount)
	assert.Equal(t, entities.CampaignStatusCompleted, campaign.Status)
	assert.False(t, campaign.CompletedAt.IsZero())
	mailer.AssertExpectations(t)
}

func TestCampaignUsecase_SendPromotional_AllFailedMarksFailed(t *testing.T) {
	campaignRepo := new(MockCampaignRepository)
	mailer := new(MockMailer)
	uc := usecases.NewCampaignUsecase(campaignRepo, mailer)

	campaignRepo.On("Create", context.Background(), mock.Anything).Return(nil).Once()
	campaignRepo.On("Update", context.Background(), mock.Anything).Return(nil).Once()
	mailer.On("SendPromotional", context.Background(), "a@mail.com", "Sale", "body").
		Return(errors.New("smtp: rejected")).Once()

	campaign, err := uc.SendPromotional(context.Background(), "ops@crowdwave.eu", &entities.SendPromotionalInput{
		Subject:    "Sale",
		Body:       "body",
		Recipients: []string{"a@mail.com"},
	})
	assert.NoError(t, err)
	assert.Equal(t, entities.CampaignStatusFailed, campaign.Status)
	assert.Equal(t, 0, campaign.SentCount)
	assert.Equal(t, 1, campaign.FailedCount)
}

func TestCampaignUsecase_SendPromotional_NoRecipients(t *testing.T) {
	campaignRepo := new(MockCampaignRepository)
	uc := usecases.NewCampaignUsecase(campaignRepo, new(MockMailer))

	_, err := uc.SendPromotional(context.Background(), "ops@crowdwave.eu", &entities.SendPromotionalInput{
		Subject: "Sale",
		Body:    "body",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidInput)
	campaignRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCampaignUsecase_SendTest(t *testing.T) {
	mailer := new(MockMailer)
	uc := usecases.NewCampaignUsecase(new(MockCampaignRepository), mailer)

	mailer.On("SendTest", context.Background(), "probe@mail.com").Return(nil).Once()

	assert.NoError(t, uc.SendTest(context.Background(), "probe@mail.com"))
	mailer.AssertExpectations(t)
}
