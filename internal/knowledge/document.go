package knowledge

// document is the hand-authored knowledge base the assistant answers from.
// Top-level "## " headings are the section boundaries used by Split.
const document = `
# SevakAI - AI-Powered Domestic Helper Platform

## Company Overview
SevakAI is India's first AI-powered platform that connects homeowners with
verified domestic helpers including maids, cooks, drivers, babysitters and
elderly care assistants. We replace random referrals and WhatsApp groups with
a systematic, AI-driven approach to domestic help hiring.

## Services Offered
### Maids & Housekeepers
- Full-time live-in and live-out options
- Part-time (2-6 hours daily)
- One-time deep cleaning services
- Regular weekly or monthly cleaning
- Verified profiles with background checks

### Cooks & Chefs
- Full-time family cooks
- Part-time meal preparation
- Vegetarian and non-vegetarian specialists
- Regional cuisine experts (South Indian, North Indian, Bengali and more)
- Special dietary requirements (diabetic, low-sodium, Jain food)

### Babysitters & Nannies
- Experienced child care professionals
- Age-specific care for infants, toddlers and school-age children
- Educational support and activity planning
- Overnight and emergency babysitting

### Drivers
- Personal family drivers, part-time and full-time
- Airport pickup and drop services
- Elderly transportation assistance
- Verified driving licenses and background checks

### Elderly Care
- Companion care services
- Medical appointment assistance and medication reminders
- Light housekeeping for seniors

## Pricing & Salary Ranges
- Maids: 8,000-25,000 per month
- Cooks: 10,000-30,000 per month
- Drivers: 15,000-35,000 per month
- Nannies: 12,000-40,000 per month
- Elderly Care: 15,000-45,000 per month
- Zero commission fees, no broker charges, no advance payments to the
  platform; salary is paid directly to the helper.

## Core Technology Features
### AI Voice Interview System
- Multilingual AI agent conducts phone and WhatsApp interviews
- Supports Hindi, English, Telugu, Tamil, Bengali, Kannada, Malayalam,
  Marathi, Gujarati and Punjabi
- Skill assessment and behavioral analysis through conversation patterns

### Smart Matching Algorithm
- Learns family preferences and requirements
- Location-based matching within your area
- Schedule, availability and price range optimization
- Special requirement fulfillment (pets, elderly care, dietary needs)

### Verification Process
- Police background verification
- Identity document verification (Aadhaar, PAN)
- Previous employer reference checks
- Skills assessment tests and address verification

## Geographic Coverage
### Currently Available
- Hyderabad, Telangana (full service) - all areas including Banjara Hills,
  Jubilee Hills, Gachibowli, Kondapur, Madhapur, Miyapur and Secunderabad

### Expanding Soon
- Bengaluru, Chennai, Mumbai, Delhi NCR and Dubai

## How SevakAI Works
### Step 1: Customer Registration
- Sign up with basic requirements: helper type, timings, budget
- Detail special requirements (pets, elderly, dietary needs)
- Set location and preferred working hours

### Step 2: AI-Powered Helper Sourcing
- AI voice agent interviews potential helpers
- Background verification and skills scoring
- Language preference matching

### Step 3: Smart Matching
- Algorithm matches candidates to your criteria within 24 hours
- Multiple candidate profiles with video introductions
- Schedule preliminary interviews

### Step 4: Hiring & Onboarding
- Direct communication with the selected helper
- Trial period arrangement (typically 7-15 days)
- Ongoing support and performance feedback

## Special Programs
### Women Empowerment Initiative
- Priority employment for women from underprivileged backgrounds
- Skill training, certification and financial literacy workshops

### Quality Assurance
- Regular performance reviews and customer feedback integration
- Helper training and development programs

## Contact Information
- Phone: +91 98765 43210 (available 24/7)
- Email: hello@sevakai.com
- WhatsApp: available for instant support
- Office: Hyderabad, India
`
