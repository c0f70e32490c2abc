package application

const critiquePrompt = `You are a strict FAANG recruiter hiring for a %s role at a %s.
Analyze this LinkedIn profile:
Headline: %s
About: %s

Provide 3 bullet points of harsh, constructive critique. What is missing? Why would you reject them?`

const rewritePrompt = `Rewrite the following LinkedIn profile for a user targeting a %s role at a %s.
Tone should be: %s.

Original Headline: %s
Original About: %s

Format your response exactly like this:
[NEW HEADLINE]
(Write the new headline here)

[NEW ABOUT]
(Write the new about section here)`

const roadmapPrompt = `The user wants to secure the role: '%s'.
Our ML model shows they have specific technical gaps in: %s.

Generate a strict, aggressive 3-month technical roadmap to close EXACTLY these gaps.
Keep it under 5 lines and 5 words each line max. Use markdown checkboxes. Do not sugarcoat it. Focus on FAANG-level preparation.`

const postCritiquePrompt = `You are a Senior Technical Recruiter at a FAANG company. Analyze this LinkedIn post draft:
"%s"

Provide a short, harsh critique focusing on:
1. Clarity: Is the impact clear?
2. Technical Depth: Is the technical vocabulary appropriate for a %s?

Format as a bulleted list. Be extremely concise. Max 3 bullet points.`

const mentorQueryPrompt = `Generate a strict Google search query to find LinkedIn profiles of Senior %s professionals working at %s companies. Return ONLY the search string, no markdown, no quotes. Example: site:linkedin.com/in/ 'Senior Software Engineer' 'Google'.`

const pitchPrompt = `Based on this professional's search snippet: '%s', write a 1-sentence, highly personalized pitch on why a student aiming for a %s role should connect with them. Be professional and aggressive.`
