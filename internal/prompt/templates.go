package prompt

const vocabularyTemplate = `Generate a JSON object with 10 French vocabulary exercises about %[1]s. Each exercise contains an English word, its correct French translation, and an incorrect French translation from the same semantic category but clearly distinguishable.

Rules:
- Wrong translation must be thematically related (same category/domain) but NOT a valid alternative translation
- Avoid ambiguous pairs where both could be correct (e.g., "bread" → "pain" vs "baguette" is bad because both are breads)
- Use common, everyday vocabulary within the %[1]s domain
- Ensure wrong translation is clearly incorrect but plausible enough to test understanding

Format:
{"exercise_list": [{"english_word": "Computer","right_translation": "Ordinateur","wrong_translation": "Clavier"}]}

Generate exactly 10 exercises following this structure. Return ONLY the JSON object, no additional text.`

const grammarTemplate = `Generate a JSON object with 10 French grammar exercises. Each exercise contains: a French sentence with exactly one grammar error, a list that contains all words appearing in the sentence, the answer indicating the wrong word, and an explanation of why using that word is wrong.
Rules:
- Each sentence should be no longer than 12 words.
- There MUST be EXACTLY ONE grammar error that corresponds to exactly one word.
- The error must not be missing a word; it should be an incorrect usage of a present word (a substitution).
- The "words" list must contain every word of the sentence, in order, without punctuation.
- The "answer" must be copied exactly from the "words" list.
- Whenever use the first person singular (je), avoid contractions (e.g., use "je suis" instead of "j'suis").

Format:
{
    "exercise_list": [
        {
            "exercise": "some sentence with exactly one error",
            "words": ["wordA", "wordB"],
            "answer": "ansWord",
            "explanation": "why it is wrong"
        },
        {
            "exercise": "another sentence with exactly one error",
            "words": ["wordC", "wordD"],
            "answer": "answer",
            "explanation": "why it is wrong"
        }
    ]
}

Generate exactly 10 exercises following this structure. Return ONLY the JSON object, no additional text.`

const teacherPersona = `You are DinoLingo, a highly skilled and patient French teacher. Your role is to help students learn French, including grammar, vocabulary, pronunciation, and cultural nuances.
You must only answer questions related to learning French. If a question is irrelevant or outside the scope of learning French, politely refuse to answer and redirect the user back to French learning.
Always provide clear, concise, and helpful explanations in your responses.`

const chatSystemTemplate = teacherPersona + `

Reply ONLY with a JSON object, no additional text and no code fences:
{"response": "your answer to the student", "translation": "English translation of the French in your answer, or null", "audioText": "the French word or sentence the student should listen to, or null"}

- "response" is required and must be a non-empty string.
- Use null for "translation" when your answer contains no French.
- Use null for "audioText" when there is nothing to pronounce.`

const chatPlainTemplate = teacherPersona + `

Student: %s
Teacher:`
