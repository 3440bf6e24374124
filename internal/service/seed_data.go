package service

import "fitmanager/routine-service/internal/domain"

// DefaultExercises returns a fresh copy of the seed catalog. Content is in Spanish, the
// language of the client application.
func DefaultExercises() []domain.Exercise {
	return []domain.Exercise{
		{
			Name:         "Press de Banca",
			Description:  "Ejercicio fundamental para el desarrollo del pecho, realizado acostado en un banco con barra.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleChest},
			Equipment:    []domain.Equipment{domain.EquipmentBarbell},
			Difficulty:   domain.DifficultyIntermediate,
			Instructions: []string{
				"Acuéstate en el banco con los pies firmes en el suelo",
				"Agarra la barra con las manos separadas al ancho de los hombros",
				"Baja la barra controladamente hasta el pecho",
				"Empuja la barra hacia arriba hasta extender completamente los brazos",
			},
			Tips: []string{
				"Mantén los omóplatos retraídos",
				"No rebotes la barra en el pecho",
				"Controla la respiración: inhala al bajar, exhala al subir",
			},
		},
		{
			Name:         "Flexiones de Pecho",
			Description:  "Ejercicio básico de peso corporal para fortalecer pecho, hombros y tríceps.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleChest, domain.MuscleArms},
			Equipment:    []domain.Equipment{domain.EquipmentBodyweight},
			Difficulty:   domain.DifficultyBeginner,
			Instructions: []string{
				"Colócate en posición de plancha con las manos al ancho de los hombros",
				"Mantén el cuerpo recto desde la cabeza hasta los pies",
				"Baja el cuerpo hasta que el pecho casi toque el suelo",
				"Empuja hacia arriba hasta la posición inicial",
			},
			Tips: []string{
				"Mantén el core activado",
				"No dejes caer las caderas",
				"Controla el movimiento en ambas fases",
			},
		},
		{
			Name:         "Aperturas con Mancuernas",
			Description:  "Ejercicio de aislamiento para el pecho usando mancuernas.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleChest},
			Equipment:    []domain.Equipment{domain.EquipmentDumbbells},
			Difficulty:   domain.DifficultyIntermediate,
			Instructions: []string{
				"Acuéstate en un banco con una mancuerna en cada mano",
				"Extiende los brazos hacia arriba con las palmas enfrentadas",
				"Baja las mancuernas en arco amplio hasta sentir estiramiento en el pecho",
				"Regresa a la posición inicial contrayendo el pecho",
			},
			Tips: []string{
				"Mantén una ligera flexión en los codos",
				"Controla el peso en todo el rango de movimiento",
				"No bajes demasiado para evitar lesiones",
			},
		},
		{
			Name:         "Dominadas",
			Description:  "Ejercicio de peso corporal para desarrollar la espalda y bíceps.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleBack, domain.MuscleArms},
			Equipment:    []domain.Equipment{domain.EquipmentBodyweight},
			Difficulty:   domain.DifficultyAdvanced,
			Instructions: []string{
				"Cuelga de una barra con agarre pronado, manos al ancho de los hombros",
				"Activa el core y mantén las piernas ligeramente flexionadas",
				"Tira del cuerpo hacia arriba hasta que la barbilla pase la barra",
				"Baja controladamente hasta la posición inicial",
			},
			Tips: []string{
				"Evita balancearte",
				"Inicia el movimiento con los músculos de la espalda",
				"Si no puedes hacer dominadas completas, usa bandas de resistencia",
			},
		},
		{
			Name:         "Remo con Barra",
			Description:  "Ejercicio compuesto para desarrollar la espalda media y baja.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleBack},
			Equipment:    []domain.Equipment{domain.EquipmentBarbell},
			Difficulty:   domain.DifficultyIntermediate,
			Instructions: []string{
				"De pie con los pies al ancho de los hombros, sostén la barra",
				"Inclínate hacia adelante manteniendo la espalda recta",
				"Tira de la barra hacia el abdomen bajo",
				"Baja la barra controladamente",
			},
			Tips: []string{
				"Mantén el core activado",
				"No uses impulso",
				"Aprieta los omóplatos al tirar",
			},
		},
		{
			Name:         "Jalones al Pecho",
			Description:  "Ejercicio en máquina para desarrollar el dorsal ancho.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleBack},
			Equipment:    []domain.Equipment{domain.EquipmentMachine},
			Difficulty:   domain.DifficultyBeginner,
			Instructions: []string{
				"Siéntate en la máquina con los muslos asegurados",
				"Agarra la barra con agarre amplio",
				"Tira de la barra hacia el pecho superior",
				"Regresa controladamente a la posición inicial",
			},
			Tips: []string{
				"Inclínate ligeramente hacia atrás",
				"Enfócate en usar los músculos de la espalda",
				"No uses impulso",
			},
		},
		{
			Name:         "Sentadillas",
			Description:  "Ejercicio fundamental para el desarrollo de las piernas y glúteos.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleLegs},
			Equipment:    []domain.Equipment{domain.EquipmentBodyweight},
			Difficulty:   domain.DifficultyBeginner,
			Instructions: []string{
				"De pie con los pies al ancho de los hombros",
				"Baja como si fueras a sentarte en una silla",
				"Mantén el pecho erguido y las rodillas alineadas con los pies",
				"Baja hasta que los muslos estén paralelos al suelo",
				"Empuja a través de los talones para volver arriba",
			},
			Tips: []string{
				"Mantén el peso en los talones",
				"No dejes que las rodillas se vayan hacia adentro",
				"Mantén el core activado",
			},
		},
		{
			Name:         "Peso Muerto",
			Description:  "Ejercicio compuesto que trabaja toda la cadena posterior.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleLegs, domain.MuscleBack},
			Equipment:    []domain.Equipment{domain.EquipmentBarbell},
			Difficulty:   domain.DifficultyAdvanced,
			Instructions: []string{
				"De pie con la barra frente a ti, pies al ancho de caderas",
				"Agáchate y agarra la barra con las manos al ancho de los hombros",
				"Mantén la espalda recta y levanta la barra extendiendo caderas y rodillas",
				"Termina de pie con los hombros hacia atrás",
			},
			Tips: []string{
				"Mantén la barra cerca del cuerpo",
				"No redondees la espalda",
				"Inicia el movimiento con las caderas",
			},
		},
		{
			Name:         "Zancadas",
			Description:  "Ejercicio unilateral para piernas y glúteos.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleLegs},
			Equipment:    []domain.Equipment{domain.EquipmentBodyweight},
			Difficulty:   domain.DifficultyBeginner,
			Instructions: []string{
				"De pie con los pies juntos",
				"Da un paso largo hacia adelante",
				"Baja hasta que ambas rodillas estén a 90 grados",
				"Empuja con la pierna delantera para volver a la posición inicial",
			},
			Tips: []string{
				"Mantén el torso erguido",
				"No dejes que la rodilla delantera pase los dedos del pie",
				"Alterna las piernas",
			},
		},
		{
			Name:         "Press Militar",
			Description:  "Ejercicio para desarrollar los hombros y core.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleShoulders},
			Equipment:    []domain.Equipment{domain.EquipmentBarbell},
			Difficulty:   domain.DifficultyIntermediate,
			Instructions: []string{
				"De pie con los pies al ancho de los hombros",
				"Sostén la barra a la altura de los hombros",
				"Empuja la barra directamente hacia arriba",
				"Baja controladamente a la posición inicial",
			},
			Tips: []string{
				"Mantén el core activado",
				"No arquees excesivamente la espalda",
				"Empuja la cabeza ligeramente hacia adelante al final del movimiento",
			},
		},
		{
			Name:         "Elevaciones Laterales",
			Description:  "Ejercicio de aislamiento para el deltoides medio.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleShoulders},
			Equipment:    []domain.Equipment{domain.EquipmentDumbbells},
			Difficulty:   domain.DifficultyBeginner,
			Instructions: []string{
				"De pie con una mancuerna en cada mano a los lados",
				"Levanta los brazos hacia los lados hasta la altura de los hombros",
				"Mantén una ligera flexión en los codos",
				"Baja controladamente",
			},
			Tips: []string{
				"No uses impulso",
				"Mantén los hombros hacia abajo",
				"Controla el movimiento en ambas direcciones",
			},
		},
		{
			Name:         "Curl de Bíceps",
			Description:  "Ejercicio básico para el desarrollo de los bíceps.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleArms},
			Equipment:    []domain.Equipment{domain.EquipmentDumbbells},
			Difficulty:   domain.DifficultyBeginner,
			Instructions: []string{
				"De pie con una mancuerna en cada mano, brazos a los lados",
				"Mantén los codos pegados al torso",
				"Flexiona los brazos llevando las mancuernas hacia los hombros",
				"Baja controladamente",
			},
			Tips: []string{
				"No balancees el cuerpo",
				"Mantén los codos fijos",
				"Controla la fase excéntrica",
			},
		},
		{
			Name:         "Extensiones de Tríceps",
			Description:  "Ejercicio para desarrollar la parte posterior de los brazos.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleArms},
			Equipment:    []domain.Equipment{domain.EquipmentDumbbells},
			Difficulty:   domain.DifficultyBeginner,
			Instructions: []string{
				"Acostado en un banco, sostén una mancuerna con ambas manos sobre el pecho",
				"Baja la mancuerna detrás de la cabeza flexionando solo los codos",
				"Extiende los brazos para volver a la posición inicial",
			},
			Tips: []string{
				"Mantén los codos fijos",
				"No uses peso excesivo",
				"Controla el movimiento",
			},
		},
		{
			Name:         "Fondos en Paralelas",
			Description:  "Ejercicio de peso corporal para tríceps y pecho inferior.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleArms, domain.MuscleChest},
			Equipment:    []domain.Equipment{domain.EquipmentBodyweight},
			Difficulty:   domain.DifficultyIntermediate,
			Instructions: []string{
				"Sujétate en las barras paralelas con los brazos extendidos",
				"Baja el cuerpo flexionando los codos",
				"Empuja hacia arriba hasta extender completamente los brazos",
			},
			Tips: []string{
				"Mantén el cuerpo ligeramente inclinado hacia adelante",
				"No bajes demasiado para evitar lesiones en los hombros",
				"Controla el movimiento",
			},
		},
		{
			Name:         "Plancha",
			Description:  "Ejercicio isométrico para fortalecer el core.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleCore},
			Equipment:    []domain.Equipment{domain.EquipmentBodyweight},
			Difficulty:   domain.DifficultyBeginner,
			Instructions: []string{
				"Colócate en posición de flexión pero apoyado en los antebrazos",
				"Mantén el cuerpo recto desde la cabeza hasta los pies",
				"Mantén la posición el tiempo indicado",
				"Respira normalmente durante el ejercicio",
			},
			Tips: []string{
				"No dejes caer las caderas",
				"Mantén el cuello neutro",
				"Aprieta los glúteos y abdominales",
			},
		},
		{
			Name:         "Abdominales Crunch",
			Description:  "Ejercicio básico para los músculos abdominales.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleCore},
			Equipment:    []domain.Equipment{domain.EquipmentBodyweight},
			Difficulty:   domain.DifficultyBeginner,
			Instructions: []string{
				"Acuéstate boca arriba con las rodillas flexionadas",
				"Coloca las manos detrás de la cabeza",
				"Levanta los hombros del suelo contrayendo los abdominales",
				"Baja controladamente",
			},
			Tips: []string{
				"No tires del cuello",
				"Enfócate en la contracción abdominal",
				"Exhala al subir",
			},
		},
		{
			Name:         "Mountain Climbers",
			Description:  "Ejercicio dinámico que combina cardio y fortalecimiento del core.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleCore, domain.MuscleCardio},
			Equipment:    []domain.Equipment{domain.EquipmentBodyweight},
			Difficulty:   domain.DifficultyIntermediate,
			Instructions: []string{
				"Comienza en posición de plancha alta",
				"Lleva una rodilla hacia el pecho",
				"Cambia rápidamente de pierna",
				"Mantén un ritmo constante",
			},
			Tips: []string{
				"Mantén las caderas estables",
				"No dejes que las caderas suban",
				"Mantén el core activado",
			},
		},
		{
			Name:         "Burpees",
			Description:  "Ejercicio de cuerpo completo que combina fuerza y cardio.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleCardio},
			Equipment:    []domain.Equipment{domain.EquipmentBodyweight},
			Difficulty:   domain.DifficultyIntermediate,
			Instructions: []string{
				"De pie, baja a posición de cuclillas",
				"Coloca las manos en el suelo y salta los pies hacia atrás",
				"Haz una flexión",
				"Salta los pies hacia adelante y salta hacia arriba",
			},
			Tips: []string{
				"Mantén un ritmo constante",
				"Modifica el ejercicio si es necesario",
				"Respira de manera controlada",
			},
		},
		{
			Name:         "Jumping Jacks",
			Description:  "Ejercicio cardiovascular básico.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleCardio},
			Equipment:    []domain.Equipment{domain.EquipmentBodyweight},
			Difficulty:   domain.DifficultyBeginner,
			Instructions: []string{
				"De pie con los pies juntos y brazos a los lados",
				"Salta separando los pies y levantando los brazos sobre la cabeza",
				"Salta de nuevo para volver a la posición inicial",
				"Repite de manera continua",
			},
			Tips: []string{
				"Mantén un ritmo constante",
				"Aterriza suavemente",
				"Mantén el core activado",
			},
		},
		{
			Name:         "Thrusters",
			Description:  "Ejercicio funcional que combina sentadilla y press de hombros.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleLegs, domain.MuscleShoulders},
			Equipment:    []domain.Equipment{domain.EquipmentDumbbells},
			Difficulty:   domain.DifficultyIntermediate,
			Instructions: []string{
				"De pie con mancuernas a la altura de los hombros",
				"Haz una sentadilla completa",
				"Al subir, empuja las mancuernas hacia arriba",
				"Baja las mancuernas mientras bajas a la siguiente sentadilla",
			},
			Tips: []string{
				"Usa el impulso de las piernas para ayudar con el press",
				"Mantén el core activado",
				"Controla el ritmo",
			},
		},
		{
			Name:         "Kettlebell Swings",
			Description:  "Ejercicio dinámico para desarrollar potencia y resistencia.",
			MuscleGroups: []domain.MuscleGroup{domain.MuscleLegs, domain.MuscleBack, domain.MuscleCore},
			Equipment:    []domain.Equipment{domain.EquipmentKettlebell},
			Difficulty:   domain.DifficultyIntermediate,
			Instructions: []string{
				"De pie con los pies al ancho de los hombros, kettlebell entre las piernas",
				"Flexiona las caderas y agarra la kettlebell",
				"Impulsa las caderas hacia adelante para balancear la kettlebell",
				"Deja que la kettlebell baje entre las piernas y repite",
			},
			Tips: []string{
				"El movimiento viene de las caderas, no de los brazos",
				"Mantén la espalda recta",
				"Aprieta los glúteos en la parte superior del movimiento",
			},
		},
	}
}
