package app

import (
	"context"
	"encoding/json"

	aws "github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/rs/zerolog/log"

	"github.com/babumoltbot/saasname/app/config"
	"github.com/babumoltbot/saasname/app/models"
)

// RecordFeatureInterest stores one de-duplicated row per (user, feature) and
// publishes a best-effort notification message. Publish failures never fail
// the request.
func RecordFeatureInterest(ctx context.Context, cfg *config.Config, user models.User, feature string) error {
	if err := insertFeatureInterest(ctx, user.ID, feature); err != nil {
		return err
	}

	if cfg.QueueURL == "" {
		return nil
	}

	msg := models.InterestMessage{
		UserID:  user.ID,
		Email:   user.Email,
		Feature: feature,
	}
	body, err := json.Marshal(msg)
	if err != nil {
		log.Warn().Err(err).Msg("failed to marshal interest message")
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("failed to load AWS config for SQS")
		return nil
	}

	client := sqs.NewFromConfig(awsCfg)
	_, err = client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    &cfg.QueueURL,
		MessageBody: aws.String(string(body)),
	})
	if err != nil {
		log.Warn().Err(err).Str("feature", feature).Msg("failed to publish interest message")
	}
	return nil
}
