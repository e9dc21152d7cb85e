package connection

import (
	"context"
	"fmt"

	"lostandfound/config"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"google.golang.org/api/option"
)

// FBConnection initializes the Firestore and FCM clients backing the live
// feed. When no credentials are configured both clients are nil and the
// feed stays disabled.
func FBConnection(cfg *config.Config) (*firestore.Client, *messaging.Client, error) {
	if cfg.FirebaseCredentials == "" {
		return nil, nil, nil
	}

	ctx := context.Background()
	app, err := firebase.NewApp(ctx, nil, option.WithCredentialsFile(cfg.FirebaseCredentials))
	if err != nil {
		return nil, nil, fmt.Errorf("initialize firebase app: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("initialize firestore client: %w", err)
	}

	msg, err := app.Messaging(ctx)
	if err != nil {
		fs.Close()
		return nil, nil, fmt.Errorf("initialize messaging client: %w", err)
	}

	return fs, msg, nil
}
