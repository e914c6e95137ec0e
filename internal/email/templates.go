package email

import (
	"fmt"

	"styleai/internal/models"
)

func generateWelcomeHTML(user *models.User) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>Welcome to StyleAI</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f8f9fa;
        }
        .container {
            background-color: white;
            padding: 40px;
            border-radius: 12px;
            box-shadow: 0 2px 10px rgba(0, 0, 0, 0.1);
        }
        .logo {
            font-size: 28px;
            font-weight: bold;
            color: #6d3b9e;
            margin-bottom: 10px;
            text-align: center;
        }
        .content {
            font-size: 16px;
            margin-bottom: 30px;
        }
        .footer {
            font-size: 13px;
            color: #888;
            text-align: center;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">StyleAI</div>
        <div class="content">
            <p>Hi %s,</p>
            <p>Welcome to StyleAI! Your closet is ready. Add your clothes, build outfits,
            plan what to wear for upcoming events, and let the stylist suggest combinations
            you might not have thought of.</p>
        </div>
        <div class="footer">
            You received this email because an account was created with this address.
        </div>
    </div>
</body>
</html>`, user.Name)
}

func generateWelcomeText(user *models.User) string {
	return fmt.Sprintf(`Hi %s,

Welcome to StyleAI! Your closet is ready. Add your clothes, build outfits,
plan what to wear for upcoming events, and let the stylist suggest
combinations you might not have thought of.

You received this email because an account was created with this address.
`, user.Name)
}

func generateEventReminderHTML(user *models.User, event *models.PlannedEvent, outfit *models.Outfit) string {
	occasion := event.Occasion
	if occasion == "" {
		occasion = "your event"
	}
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Outfit planned</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, Oxygen, Ubuntu, Cantarell, sans-serif;
            line-height: 1.6;
            color: #333;
            max-width: 600px;
            margin: 0 auto;
            padding: 20px;
            background-color: #f8f9fa;
        }
        .container {
            background-color: white;
            padding: 40px;
            border-radius: 12px;
            box-shadow: 0 2px 10px rgba(0, 0, 0, 0.1);
        }
        .logo {
            font-size: 28px;
            font-weight: bold;
            color: #6d3b9e;
            margin-bottom: 10px;
            text-align: center;
        }
        .highlight {
            font-size: 18px;
            color: #6d3b9e;
        }
    </style>
</head>
<body>
    <div class="container">
        <div class="logo">StyleAI</div>
        <p>Hi %s,</p>
        <p>You planned <span class="highlight">%s</span> for %s on %s. It's on your calendar.</p>
    </div>
</body>
</html>`, user.Name, outfit.Name, occasion, event.Date)
}

func generateEventReminderText(user *models.User, event *models.PlannedEvent, outfit *models.Outfit) string {
	occasion := event.Occasion
	if occasion == "" {
		occasion = "your event"
	}
	return fmt.Sprintf(`Hi %s,

You planned "%s" for %s on %s. It's on your calendar.
`, user.Name, outfit.Name, occasion, event.Date)
}
